package alerts

import (
	"context"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de alertas de stock bajo de una
// empresa: misma lectura que el motor, renderizada para imprimir/compartir.
type ReportUseCase struct {
	alertUC     *LowStockAlertUseCase
	companyRepo repository.CompanyRepository
	generator   ReportGenerator
}

// NewReportUseCase construye el caso de uso de reporte.
func NewReportUseCase(alertUC *LowStockAlertUseCase, companyRepo repository.CompanyRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{alertUC: alertUC, companyRepo: companyRepo, generator: generator}
}

// Generate calcula las alertas vigentes y devuelve los bytes del PDF.
// Mantiene la política del motor: empresa desconocida = reporte vacío.
func (uc *ReportUseCase) Generate(ctx context.Context, companyID string) ([]byte, *dto.LowStockAlertsResponse, error) {
	result, err := uc.alertUC.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	title := companyID
	if company, err := uc.companyRepo.GetByID(companyID); err == nil && company != nil {
		title = company.Name
	}
	pdf, err := uc.generator.GenerateLowStockReport(ctx, title, result.Alerts)
	if err != nil {
		return nil, nil, err
	}
	return pdf, result, nil
}
