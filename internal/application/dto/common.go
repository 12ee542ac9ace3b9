package dto

// MessageResponse cuerpo con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse cuerpo con mensaje y payload.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse cuerpo de error de negocio (login/register).
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError error de validación de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lista de errores de validación; se reportan todos juntos, sin cortocircuito.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
