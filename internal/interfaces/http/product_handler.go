package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/application/usecase"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
// Create es el pipeline transaccional producto + inventario; su contrato
// de errores es fijo: 400 "<field> is required", 409 "SKU already exists",
// 500 "Database error occurred".
type ProductHandler struct {
	createUC *inventory.CreateProductUseCase
	uc       *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *inventory.CreateProductUseCase, uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{createUC: createUC, uc: uc}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	product, err := h.createUC.Execute(c.UserContext(), in)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: vErr.Message})
		case errors.Is(err, domain.ErrSKUConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "SKU already exists"})
		default:
			// Internos del storage jamás llegan al cliente.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:   "Product created successfully",
		ProductID: product.ID,
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
	}
	return c.JSON(out)
}

// UpdateAlertConfig godoc
// @Summary      Actualizar configuración de alertas del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateAlertConfigRequest  true  "Umbral / ventas diarias / recencia"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/alert-config [put]
func (h *ProductHandler) UpdateAlertConfig(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAlertConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.UpdateAlertConfig(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ListComponents godoc
// @Summary      Listar componentes (bundle) de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto padre"
// @Success      200  {array}  dto.BundleComponentResponse
// @Router       /api/products/{id}/components [get]
func (h *ProductHandler) ListComponents(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ListComponents(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
	}
	return c.JSON(out)
}
