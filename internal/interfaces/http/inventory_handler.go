package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/inventory"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos los registros de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "No records"})
	}
	return c.JSON(dto.DataResponse{
		Message: "All records",
		Data:    dto.ToInventoryItemResponses(items),
	})
}

// GetByID godoc
// @Summary      Obtener un registro por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Inventory not found"})
	}
	return c.JSON(dto.DataResponse{
		Message: "registration is successfully obtained",
		Data:    dto.ToInventoryItemResponse(item),
	})
}

// Create godoc
// @Summary      Crear un registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "categoria, suministros, salida"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	suministros, errs := inventory.ValidateCreate(in)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	item, err := h.uc.Create(in.Categoria, suministros, in.Salida)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Message: "Inventory has been successfully created",
		Data:    dto.ToInventoryItemResponse(item),
	})
}

// Salida godoc
// @Summary      Consultar salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalidaRequest  true  "salida"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/inventory/salida [post]
func (h *InventoryHandler) Salida(c *fiber.Ctx) error {
	var in dto.SalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	// Flag ausente o false rechaza igual que el valor falsy
	if !in.Salida {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Errors: []dto.FieldError{{Field: "salida", Message: "Salida flag is required"}},
		})
	}
	item, err := h.uc.FindSalida(in.Salida)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Inventory not found for outflow"})
	}
	return c.JSON(dto.DataResponse{
		Message: "inventory outflow",
		Data:    dto.ToInventoryItemResponse(item),
	})
}

// Update godoc
// @Summary      Actualizar un registro por ID
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "categoria, suministros, salida"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	// Sin validación en update: el registro se reemplaza completo con el body;
	// el ID se toma de la ruta, nunca del body.
	item, err := h.uc.Update(c.Params("id"), in.Categoria, in.Suministros, in.Salida)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Inventory not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{
		Message: "Successfully updated",
		Data:    dto.ToInventoryItemResponse(item),
	})
}

// Delete godoc
// @Summary      Eliminar un registro por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Inventory not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Successfully removed"})
}
