package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear producto + inventario inicial.
// Los cinco primeros campos son obligatorios. Se conservan crudos
// (punteros / RawMessage) para poder distinguir "ausente" de "presente
// pero malformado" y validar en orden fijo, campo por campo.
type CreateProductRequest struct {
	Name            *string         `json:"name"`
	SKU             *string         `json:"sku"`
	Price           json.RawMessage `json:"price"` // string o número JSON; se parsea a decimal exacto
	WarehouseID     *string         `json:"warehouse_id"`
	InitialQuantity *int64          `json:"initial_quantity"`

	// Configuración de alertas, opcional al crear (0 / false = sin alertas
	// hasta que el pipeline de ventas la actualice).
	LowStockThreshold *int64          `json:"low_stock_threshold"`
	AvgDailySales     json.RawMessage `json:"avg_daily_sales"`
	HasRecentSales    *bool           `json:"has_recent_sales"`
}

// CreateProductResponse salida del pipeline de escritura (201).
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"`
	HasRecentSales    bool            `json:"has_recent_sales"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BundleComponentResponse un componente de la composición de un producto.
type BundleComponentResponse struct {
	ChildProductID string `json:"child_product_id"`
	Quantity       int64  `json:"quantity"`
}

// UpdateAlertConfigRequest entrada para actualizar la configuración de
// alertas de un producto (campos opcionales; nil = sin cambio).
type UpdateAlertConfigRequest struct {
	LowStockThreshold *int64           `json:"low_stock_threshold"`
	AvgDailySales     *decimal.Decimal `json:"avg_daily_sales"`
	HasRecentSales    *bool            `json:"has_recent_sales"`
}
