package dto

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// CreateInventoryRequest body para POST /api/inventory.
// Suministros se transporta crudo para que el validador pueda distinguir
// ausente / no-array / array vacío y reportar todas las violaciones juntas.
type CreateInventoryRequest struct {
	Categoria   string          `json:"categoria"`
	Suministros json.RawMessage `json:"suministros"`
	Salida      bool            `json:"salida"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:id.
// El update no valida: reemplaza el registro completo con lo que llegue.
type UpdateInventoryRequest struct {
	Categoria   string   `json:"categoria"`
	Suministros []string `json:"suministros"`
	Salida      bool     `json:"salida"`
}

// SalidaRequest body para POST /api/inventory/salida.
type SalidaRequest struct {
	Salida bool `json:"salida"`
}

// InventoryItemResponse salida de un registro de inventario.
type InventoryItemResponse struct {
	ID          string    `json:"id"`
	Categoria   string    `json:"categoria"`
	Suministros []string  `json:"suministros"`
	Salida      bool      `json:"salida"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToInventoryItemResponse mapea la entidad a su representación HTTP.
func ToInventoryItemResponse(it *entity.InventoryItem) *InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &InventoryItemResponse{
		ID:          it.ID,
		Categoria:   it.Categoria,
		Suministros: it.Suministros,
		Salida:      it.Salida,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// ToInventoryItemResponses mapea una lista de entidades.
func ToInventoryItemResponses(items []*entity.InventoryItem) []*InventoryItemResponse {
	out := make([]*InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToInventoryItemResponse(it))
	}
	return out
}
