package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
)

// InventoryHandler maneja los ajustes de cantidad de inventario (protegido).
type InventoryHandler struct {
	adjustUC *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC}
}

// Adjust godoc
// @Summary      Ajustar cantidad de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Delta de cantidad"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	inv, err := h.adjustUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product_id, warehouse_id y quantity_change son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "inventario no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
		}
	}
	return c.JSON(dto.AdjustStockResponse{
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		UpdatedAt:   inv.UpdatedAt,
	})
}
