package entity

import "time"

// Inventory representa la relación (producto, bodega) con su cantidad actual.
// Una fila por par; no puede existir sin Product y Warehouse válidos.
// Se crea atómicamente junto al producto y se muta vía ajustes de stock,
// que además anotan el cambio en InventoryHistory.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64 // entero no negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
