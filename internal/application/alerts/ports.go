package alerts

import (
	"context"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
)

// ReportGenerator renderiza la lista de alertas como documento binario (PDF).
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, companyName string, alerts []dto.LowStockAlertDTO) ([]byte, error)
}
