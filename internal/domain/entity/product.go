package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto identificado por SKU único a nivel plataforma.
// No referencia bodegas directamente: la ubicación se expresa solo vía Inventory.
// AvgDailySales y HasRecentSales llegan pre-calculados del pipeline de ventas.
type Product struct {
	ID                string
	SKU               string // único en toda la plataforma, inmutable tras crear
	Name              string
	Price             decimal.Decimal // decimal exacto, nunca float
	LowStockThreshold int64
	AvgDailySales     decimal.Decimal
	HasRecentSales    bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
