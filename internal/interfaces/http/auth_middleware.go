package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/pkg/jwt"
)

// LocalUsername key del username autenticado en Fiber locals.
const LocalUsername = "username"

// AuthMiddleware valida el Bearer Token del header Authorization y deja el
// username del claim en c.Locals. Sin token responde 401; con token inválido
// o expirado responde 403 y no continúa. Verificación única y determinista,
// sin efectos secundarios.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Missing token"})
		}
		username, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{Message: "Invalid token"})
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
