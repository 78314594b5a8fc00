package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
)

// AlertHandler expone el motor de alertas de stock bajo. Lectura pura:
// mismas entradas, misma respuesta; empresa desconocida = lista vacía 200.
type AlertHandler struct {
	alertUC  *alerts.LowStockAlertUseCase
	reportUC *alerts.ReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alertUC *alerts.LowStockAlertUseCase, reportUC *alerts.ReportUseCase) *AlertHandler {
	return &AlertHandler{alertUC: alertUC, reportUC: reportUC}
}

// LowStock godoc
// @Summary      Alertas de stock bajo por empresa
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	out, err := h.alertUC.ComputeLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error occurred"})
	}
	return c.JSON(out)
}

// LowStockReport godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report [get]
func (h *AlertHandler) LowStockReport(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	pdf, _, err := h.reportUC.Generate(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo generar el reporte"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="low-stock-%s.pdf"`, companyID))
	return c.Send(pdf)
}
