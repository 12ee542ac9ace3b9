package inventory

import (
	"bytes"
	"encoding/json"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
)

// Mensajes de validación para creación de inventario.
const (
	MsgCategoriaRequired   = "Inventory category is required"
	MsgSuministrosNotArray = "Supplies must be an array"
	MsgSuministrosEmpty    = "The supply array cannot be empty"
)

// ValidateCreate valida el payload de creación y devuelve los suministros decodificados.
// Cada regla corre de forma independiente: un payload sin suministros acumula
// tanto el error de no-array como el de array vacío.
func ValidateCreate(in dto.CreateInventoryRequest) ([]string, []dto.FieldError) {
	var errs []dto.FieldError

	if in.Categoria == "" {
		errs = append(errs, dto.FieldError{Field: "categoria", Message: MsgCategoriaRequired})
	}

	raw := bytes.TrimSpace(in.Suministros)
	missing := len(raw) == 0 || bytes.Equal(raw, []byte("null"))

	var items []string
	isArray := false
	if !missing {
		isArray = json.Unmarshal(raw, &items) == nil
	}
	if !isArray {
		errs = append(errs, dto.FieldError{Field: "suministros", Message: MsgSuministrosNotArray})
	}
	if missing || (isArray && len(items) == 0) {
		errs = append(errs, dto.FieldError{Field: "suministros", Message: MsgSuministrosEmpty})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return items, nil
}
