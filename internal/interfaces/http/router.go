package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/application/auth"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/application/usecase"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	CreateProduct *inventory.CreateProductUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	AlertUC       *alerts.LowStockAlertUseCase
	ReportUC      *alerts.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Los dos contratos públicos
// (creación de producto y alertas de stock bajo) no exigen token; el
// resto de mutaciones va detrás del Bearer middleware.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Pipeline de escritura producto + inventario (público, contrato fijo)
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC)
	api.Post("/products", productHandler.Create)

	// Motor de alertas (público, solo lectura)
	alertHandler := NewAlertHandler(deps.AlertUC, deps.ReportUC)
	api.Get("/companies/:company_id/alerts/low-stock", alertHandler.LowStock)
	api.Get("/companies/:company_id/alerts/low-stock/report", alertHandler.LowStockReport)

	// Companies (público)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.ListByCompany)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products: lecturas y configuración de alertas (protegido)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/alert-config", productHandler.UpdateAlertConfig)
	products.Get("/:id/components", productHandler.ListComponents)

	// Suppliers (protegido)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	products.Post("/:id/suppliers", supplierHandler.LinkToProduct)
	products.Get("/:id/suppliers", supplierHandler.ListByProduct)

	// Ajustes de inventario (protegido, admin o bodeguero)
	invGroup := protected.Group("/inventory", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
}
