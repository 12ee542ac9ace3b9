package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	var errs []dto.FieldError
	if in.Username == "" {
		errs = append(errs, dto.FieldError{Field: "username", Message: "Username is required"})
	}
	if in.Password == "" {
		errs = append(errs, dto.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	token, err := h.uc.Login(in.Username, in.Password)
	if err != nil {
		// Mismo mensaje para usuario inexistente y password incorrecto
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Incorrect username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Message: "The user is valid", Token: token})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password (mínimo 6 caracteres)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	var errs []dto.FieldError
	if in.Username == "" {
		errs = append(errs, dto.FieldError{Field: "username", Message: "Username is required"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, dto.FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	if err := h.uc.Register(in.Username, in.Name, in.Password); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "The user already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User successfully registered"})
}
