package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// Name es opcional; si falta se usa el username.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
