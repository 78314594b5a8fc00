package dto

import "time"

// AdjustStockRequest entrada para ajustar la cantidad de un inventario.
// QuantityChange es el delta (positivo o negativo) a aplicar.
type AdjustStockRequest struct {
	ProductID      string `json:"product_id"`
	WarehouseID    string `json:"warehouse_id"`
	QuantityChange int64  `json:"quantity_change"`
}

// AdjustStockResponse salida del ajuste: cantidad resultante.
type AdjustStockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryHistoryResponse una transición de cantidad del historial.
type InventoryHistoryResponse struct {
	ID               string    `json:"id"`
	InventoryID      string    `json:"inventory_id"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	ChangedAt        time.Time `json:"changed_at"`
}
