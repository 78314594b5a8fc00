package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AlertCandidate es la fila del join de lectura del motor de alertas:
// inventario + producto + bodega + proveedor primario (o ninguno) para
// una empresa. El motor filtra y calcula sobre estas filas en memoria.
type AlertCandidate struct {
	ProductID         string
	ProductName       string
	SKU               string
	WarehouseID       string
	WarehouseName     string
	Quantity          int64
	LowStockThreshold int64
	AvgDailySales     decimal.Decimal
	HasRecentSales    bool
	InventoryUpdated  time.Time

	// Proveedor primario; punteros nil cuando el producto no tiene
	// proveedores vinculados (marcador de ausencia explícito).
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
}

// AlertRepository define el puerto de solo lectura del motor de alertas.
// ListCandidatesByCompany devuelve todas las filas de inventario de la
// empresa en orden determinista (inserción de producto, luego bodega);
// una empresa desconocida produce lista vacía, no error.
type AlertRepository interface {
	ListCandidatesByCompany(ctx context.Context, companyID string) ([]AlertCandidate, error)
}
