package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventory-alerts/internal/interfaces/http"
)

type stubAlertRepo struct {
	rows map[string][]repository.AlertCandidate
}

func (r *stubAlertRepo) ListCandidatesByCompany(_ context.Context, companyID string) ([]repository.AlertCandidate, error) {
	return r.rows[companyID], nil
}

func buildAlertApp(rows map[string][]repository.AlertCandidate) *fiber.App {
	uc := alerts.NewLowStockAlertUseCase(&stubAlertRepo{rows: rows})
	handler := apphttp.NewAlertHandler(uc, nil)
	app := fiber.New()
	app.Get("/api/companies/:company_id/alerts/low-stock", handler.LowStock)
	return app
}

func getAlerts(t *testing.T, app *fiber.App, companyID string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID+"/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAlertHandler_RespuestaConAlertas(t *testing.T) {
	supplierID, supplierName, supplierEmail := "s-1", "ACME", "ventas@acme.co"
	app := buildAlertApp(map[string][]repository.AlertCandidate{
		"co-1": {{
			ProductID: "p-1", ProductName: "Teclado", SKU: "TEC-001",
			WarehouseID: "wh-1", WarehouseName: "Central",
			Quantity: 4, LowStockThreshold: 10,
			AvgDailySales: decimal.RequireFromString("2"), HasRecentSales: true,
			SupplierID: &supplierID, SupplierName: &supplierName, SupplierEmail: &supplierEmail,
		}},
	})

	resp, body := getAlerts(t, app, "co-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_alerts"])

	alertsList, ok := body["alerts"].([]any)
	require.True(t, ok)
	require.Len(t, alertsList, 1)

	alert := alertsList[0].(map[string]any)
	assert.Equal(t, "TEC-001", alert["sku"])
	assert.Equal(t, float64(4), alert["current_quantity"])
	assert.Equal(t, float64(10), alert["threshold"])
	assert.Equal(t, float64(2), alert["days_until_stockout"])

	supplier := alert["supplier"].(map[string]any)
	assert.Equal(t, "ACME", supplier["name"])
}

// Producto sin proveedor: el campo supplier serializa como null explícito.
func TestAlertHandler_ProveedorNull(t *testing.T) {
	app := buildAlertApp(map[string][]repository.AlertCandidate{
		"co-1": {{
			ProductID: "p-1", ProductName: "Teclado", SKU: "TEC-001",
			WarehouseID: "wh-1", WarehouseName: "Central",
			Quantity: 4, LowStockThreshold: 10,
			AvgDailySales: decimal.RequireFromString("2"), HasRecentSales: true,
		}},
	})

	_, body := getAlerts(t, app, "co-1")
	alertsList := body["alerts"].([]any)
	require.Len(t, alertsList, 1)
	alert := alertsList[0].(map[string]any)

	v, present := alert["supplier"]
	assert.True(t, present, "la clave supplier debe existir")
	assert.Nil(t, v, "sin proveedor vinculado debe ser null")
}

// Empresa desconocida: 200 con lista vacía, nunca 404.
func TestAlertHandler_EmpresaDesconocida200(t *testing.T) {
	app := buildAlertApp(map[string][]repository.AlertCandidate{})

	resp, body := getAlerts(t, app, "co-x")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["total_alerts"])
	assert.NotNil(t, body["alerts"])
	assert.Empty(t, body["alerts"])
}
