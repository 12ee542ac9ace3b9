package memory

import (
	"strconv"
	"sync"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria del puerto InventoryRepository.
// El slice preserva el orden de inserción; el mutex serializa todo acceso
// porque Fiber atiende peticiones en paralelo.
type InventoryRepo struct {
	mu    sync.RWMutex
	items []*entity.InventoryItem
}

// NewInventoryRepository construye el store en memoria, opcionalmente con registros iniciales.
func NewInventoryRepository(seed ...*entity.InventoryItem) *InventoryRepo {
	r := &InventoryRepo{}
	r.items = append(r.items, seed...)
	return r
}

// Create asigna el ID como conteo actual + 1 (en string) y agrega al final.
// Tras un delete este ID puede repetir uno existente; los lookups devuelven
// la primera coincidencia.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, item)
	return nil
}

// GetAll devuelve todos los registros en orden de inserción.
func (r *InventoryRepo) GetAll() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID devuelve la primera coincidencia, o (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro completo en la posición del ID, conservando CreatedAt.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == item.ID {
			item.CreatedAt = it.CreatedAt
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la primera coincidencia del ID.
func (r *InventoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// FindBySalida devuelve el primer registro con ese flag, o (nil, nil).
func (r *InventoryRepo) FindBySalida(salida bool) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Salida == salida {
			return it, nil
		}
	}
	return nil, nil
}

// Len devuelve la cantidad de registros (para tests).
func (r *InventoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
