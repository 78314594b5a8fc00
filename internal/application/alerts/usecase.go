package alerts

import (
	"context"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain/alert"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// LowStockAlertUseCase deriva las alertas de stock bajo de una empresa a
// partir de una lectura puntual del join inventario + producto + bodega +
// proveedor primario. Solo lectura e idempotente: con datos sin cambios,
// llamadas repetidas devuelven exactamente el mismo resultado.
type LowStockAlertUseCase struct {
	alertRepo repository.AlertRepository
}

// NewLowStockAlertUseCase construye el motor de alertas.
func NewLowStockAlertUseCase(alertRepo repository.AlertRepository) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{alertRepo: alertRepo}
}

// ComputeLowStockAlerts devuelve las filas (producto, bodega) bajo umbral
// para la empresa, en el orden natural del join (sin orden de urgencia).
// Una empresa desconocida produce lista vacía y total 0, nunca error.
//
// Filtros, en orden:
//  1. recencia: sin ventas recientes (flag pre-calculado upstream) se omite;
//  2. umbral: solo cantidad estrictamente menor que el umbral del producto.
func (uc *LowStockAlertUseCase) ComputeLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	rows, err := uc.alertRepo.ListCandidatesByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		if !row.HasRecentSales {
			continue
		}
		if row.Quantity >= row.LowStockThreshold {
			continue
		}

		daily := alert.ClampDailySales(row.AvgDailySales)
		days := alert.DaysUntilStockout(row.Quantity, daily)

		var supplier *dto.SupplierContactDTO
		if row.SupplierID != nil {
			supplier = &dto.SupplierContactDTO{ID: *row.SupplierID}
			if row.SupplierName != nil {
				supplier.Name = *row.SupplierName
			}
			if row.SupplierEmail != nil {
				supplier.Email = *row.SupplierEmail
			}
		}

		out = append(out, dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentQuantity:   row.Quantity,
			LowStockThreshold: row.LowStockThreshold,
			DaysUntilStockout: days,
			Supplier:          supplier,
		})
	}

	return &dto.LowStockAlertsResponse{Alerts: out, TotalAlerts: len(out)}, nil
}
