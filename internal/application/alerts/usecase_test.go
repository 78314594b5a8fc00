package alerts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// fakeAlertRepo devuelve filas precargadas por empresa.
type fakeAlertRepo struct {
	rows map[string][]repository.AlertCandidate
	err  error
}

func (r *fakeAlertRepo) ListCandidatesByCompany(_ context.Context, companyID string) ([]repository.AlertCandidate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows[companyID], nil
}

func candidate(mutate func(*repository.AlertCandidate)) repository.AlertCandidate {
	c := repository.AlertCandidate{
		ProductID:         "p-1",
		ProductName:       "Teclado",
		SKU:               "TEC-001",
		WarehouseID:       "wh-1",
		WarehouseName:     "Bodega Central",
		Quantity:          5,
		LowStockThreshold: 10,
		AvgDailySales:     decimal.RequireFromString("2.5"),
		HasRecentSales:    true,
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func compute(t *testing.T, rows ...repository.AlertCandidate) *alerts.LowStockAlertUseCase {
	t.Helper()
	return alerts.NewLowStockAlertUseCase(&fakeAlertRepo{
		rows: map[string][]repository.AlertCandidate{"co-1": rows},
	})
}

func TestAlertas_ProductoBajoUmbral(t *testing.T) {
	uc := compute(t, candidate(nil))

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)

	a := out.Alerts[0]
	assert.Equal(t, "p-1", a.ProductID)
	assert.Equal(t, "TEC-001", a.SKU)
	assert.Equal(t, "Bodega Central", a.WarehouseName)
	assert.Equal(t, int64(5), a.CurrentQuantity)
	assert.Equal(t, int64(10), a.LowStockThreshold)
	// floor(5 / 2.5) = 2
	assert.Equal(t, int64(2), a.DaysUntilStockout)
	assert.Nil(t, a.Supplier, "sin proveedor vinculado el campo debe ser null")
}

// Sin ventas recientes el producto se omite aunque esté bajo umbral.
func TestAlertas_SinVentasRecientesSeOmite(t *testing.T) {
	uc := compute(t, candidate(func(c *repository.AlertCandidate) {
		c.HasRecentSales = false
		c.Quantity = 0
	}))

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Zero(t, out.TotalAlerts)
	assert.Empty(t, out.Alerts)
}

// El umbral es estricto: cantidad igual al umbral no alerta.
func TestAlertas_CantidadIgualAlUmbralNoAlerta(t *testing.T) {
	uc := compute(t,
		candidate(func(c *repository.AlertCandidate) { c.Quantity = 10 }),
		candidate(func(c *repository.AlertCandidate) { c.ProductID = "p-2"; c.Quantity = 9 }),
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, "p-2", out.Alerts[0].ProductID)
}

// Ventas diarias por debajo de 1 se fijan en 1: los días nunca se inflan
// por un promedio fraccionario.
func TestAlertas_ClampDeVentasDiarias(t *testing.T) {
	cases := []struct {
		name     string
		avg      string
		quantity int64
		want     int64
	}{
		{"promedio fraccionario se fija en 1", "0.4", 5, 5},
		{"promedio cero se fija en 1", "0", 7, 7},
		{"promedio mayor que 1 se usa tal cual", "2.5", 10, 4}, // floor(10/2.5)
		{"cantidad cero da cero días", "3", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := compute(t, candidate(func(c *repository.AlertCandidate) {
				c.AvgDailySales = decimal.RequireFromString(tc.avg)
				c.Quantity = tc.quantity
				c.LowStockThreshold = 100
			}))
			out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
			require.NoError(t, err)
			require.Equal(t, 1, out.TotalAlerts)
			assert.Equal(t, tc.want, out.Alerts[0].DaysUntilStockout)
		})
	}
}

// Un producto en dos bodegas produce una alerta por bodega, en el orden
// en que el repositorio entrega las filas.
func TestAlertas_MismoProductoEnDosBodegas(t *testing.T) {
	uc := compute(t,
		candidate(func(c *repository.AlertCandidate) { c.WarehouseID = "wh-1"; c.WarehouseName = "Central" }),
		candidate(func(c *repository.AlertCandidate) { c.WarehouseID = "wh-2"; c.WarehouseName = "Norte"; c.Quantity = 3 }),
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 2, out.TotalAlerts)
	assert.Equal(t, "wh-1", out.Alerts[0].WarehouseID)
	assert.Equal(t, "wh-2", out.Alerts[1].WarehouseID)
}

func TestAlertas_ProveedorPrimarioEnPayload(t *testing.T) {
	id, name, email := "s-1", "ACME Ltda", "ventas@acme.co"
	uc := compute(t, candidate(func(c *repository.AlertCandidate) {
		c.SupplierID, c.SupplierName, c.SupplierEmail = &id, &name, &email
	}))

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	require.NotNil(t, out.Alerts[0].Supplier)
	assert.Equal(t, "s-1", out.Alerts[0].Supplier.ID)
	assert.Equal(t, "ACME Ltda", out.Alerts[0].Supplier.Name)
	assert.Equal(t, "ventas@acme.co", out.Alerts[0].Supplier.Email)
}

// Empresa desconocida: lista vacía y total cero, nunca error ni nil.
func TestAlertas_EmpresaDesconocida(t *testing.T) {
	uc := compute(t, candidate(nil))

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-inexistente")
	require.NoError(t, err)
	assert.NotNil(t, out.Alerts)
	assert.Empty(t, out.Alerts)
	assert.Zero(t, out.TotalAlerts)
}

func TestAlertas_ErrorDeLecturaSePropaga(t *testing.T) {
	boom := errors.New("connection refused")
	uc := alerts.NewLowStockAlertUseCase(&fakeAlertRepo{err: boom})

	_, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	assert.ErrorIs(t, err, boom)
}
