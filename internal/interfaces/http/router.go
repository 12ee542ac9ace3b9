package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	// Raíz: info básica / health check simple
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Inventory API"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Inventory (protegido, requiere Bearer Token)
	invGroup := api.Group("/inventory", AuthMiddleware(deps.JWTSecret))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Post("/salida", inventoryHandler.Salida)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)
}
