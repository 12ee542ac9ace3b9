package inventory

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// UseCase operaciones CRUD de inventario sobre el puerto de persistencia.
// Cada operación es independiente y sin estado fuera del repositorio.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los registros en orden de inserción.
func (uc *UseCase) List() ([]*entity.InventoryItem, error) {
	return uc.repo.GetAll()
}

// Get devuelve el registro con ese ID, o (nil, nil) si no existe.
func (uc *UseCase) Get(id string) (*entity.InventoryItem, error) {
	return uc.repo.GetByID(id)
}

// Create persiste un registro nuevo; el repositorio asigna el ID.
func (uc *UseCase) Create(categoria string, suministros []string, salida bool) (*entity.InventoryItem, error) {
	now := time.Now()
	item := &entity.InventoryItem{
		Categoria:   categoria,
		Suministros: suministros,
		Salida:      salida,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update reemplaza por completo el registro con ese ID (el ID viene de la ruta,
// no del body). Devuelve domain.ErrNotFound si no existe.
func (uc *UseCase) Update(id, categoria string, suministros []string, salida bool) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ID:          id,
		Categoria:   categoria,
		Suministros: suministros,
		Salida:      salida,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(id)
}

// Delete elimina el registro con ese ID. Devuelve domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// FindSalida devuelve el primer registro cuyo flag salida coincide, o (nil, nil).
func (uc *UseCase) FindSalida(salida bool) (*entity.InventoryItem, error) {
	return uc.repo.FindBySalida(salida)
}
