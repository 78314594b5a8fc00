package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo adaptador de composiciones de productos.
type BundleRepo struct {
	pool *pgxpool.Pool
}

// NewBundleRepository construye el adaptador.
func NewBundleRepository(pool *pgxpool.Pool) *BundleRepo {
	return &BundleRepo{pool: pool}
}

// Create inserta una fila de composición padre-hijo.
func (r *BundleRepo) Create(b *entity.Bundle) error {
	query := `
		INSERT INTO bundles (id, parent_product_id, child_product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.ParentProductID, b.ChildProductID, b.Quantity, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bundle: %w", err)
	}
	return nil
}

// ListByParent lista los componentes de un producto padre.
func (r *BundleRepo) ListByParent(parentProductID string) ([]*entity.Bundle, error) {
	query := `
		SELECT id, parent_product_id, child_product_id, quantity, created_at
		FROM bundles WHERE parent_product_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, parentProductID)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bundle
	for rows.Next() {
		var b entity.Bundle
		if err := rows.Scan(&b.ID, &b.ParentProductID, &b.ChildProductID, &b.Quantity, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bundle: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
