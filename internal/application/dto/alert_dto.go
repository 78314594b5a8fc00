package dto

// SupplierContactDTO contacto del proveedor primario de un producto.
type SupplierContactDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
// Supplier es nil cuando el producto no tiene proveedor vinculado
// (marcador de ausencia explícito, serializa como null).
type LowStockAlertDTO struct {
	ProductID         string              `json:"product_id"`
	ProductName       string              `json:"product_name"`
	SKU               string              `json:"sku"`
	WarehouseID       string              `json:"warehouse_id"`
	WarehouseName     string              `json:"warehouse_name"`
	CurrentQuantity   int64               `json:"current_quantity"`
	LowStockThreshold int64               `json:"threshold"`
	DaysUntilStockout int64               `json:"days_until_stockout"`
	Supplier          *SupplierContactDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta del motor de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
