package entity

import "time"

// InventoryItem representa un registro de inventario.
// El ID es el conteo de registros al momento de crear, en string ("1", "2", ...);
// tras un delete el siguiente insert puede repetir un ID existente.
type InventoryItem struct {
	ID          string
	Categoria   string
	Suministros []string
	Salida      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
