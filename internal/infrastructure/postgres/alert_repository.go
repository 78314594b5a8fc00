package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo adaptador de solo lectura para el motor de alertas.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// ListCandidatesByCompany devuelve cada fila de inventario de la empresa
// unida a producto, bodega y proveedor primario. El LATERAL con
// is_primary DESC, created_at ASC hace determinista la elección del
// proveedor; el ORDER BY externo fija el orden de inserción producto →
// bodega. Una empresa inexistente simplemente no produce filas.
func (r *AlertRepo) ListCandidatesByCompany(ctx context.Context, companyID string) ([]repository.AlertCandidate, error) {
	query := `
		SELECT p.id, p.name, p.sku,
		       w.id, w.name,
		       i.quantity, p.low_stock_threshold, p.avg_daily_sales, p.has_recent_sales,
		       i.updated_at,
		       s.id, s.name, s.contact_email
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		LEFT JOIN LATERAL (
			SELECT su.id, su.name, su.contact_email
			FROM product_suppliers ps
			JOIN suppliers su ON su.id = ps.supplier_id
			WHERE ps.product_id = p.id
			ORDER BY ps.is_primary DESC, ps.created_at ASC
			LIMIT 1
		) s ON true
		WHERE w.company_id = $1
		ORDER BY p.created_at, w.created_at`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list alert candidates: %w", err)
	}
	defer rows.Close()

	var out []repository.AlertCandidate
	for rows.Next() {
		var c repository.AlertCandidate
		if err := rows.Scan(
			&c.ProductID, &c.ProductName, &c.SKU,
			&c.WarehouseID, &c.WarehouseName,
			&c.Quantity, &c.LowStockThreshold, &c.AvgDailySales, &c.HasRecentSales,
			&c.InventoryUpdated,
			&c.SupplierID, &c.SupplierName, &c.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan alert candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
