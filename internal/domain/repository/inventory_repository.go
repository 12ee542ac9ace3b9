package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// Los lookups devuelven (nil, nil) si no hay coincidencia; Update y Delete
// devuelven domain.ErrNotFound si el ID no existe.
type InventoryRepository interface {
	// Create asigna el ID (conteo actual + 1, en string) y persiste el registro.
	Create(item *entity.InventoryItem) error
	GetAll() ([]*entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
	// Update reemplaza por completo el registro con ese ID (el ID no cambia).
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	// FindBySalida devuelve el primer registro cuyo flag salida coincide, en orden de inserción.
	FindBySalida(salida bool) (*entity.InventoryItem, error)
}
