package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.Phone,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, phone, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, phone, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LinkToProduct asocia proveedor y producto. Si isPrimary es true, demueve
// al primario anterior en la misma transacción: el predicado is_primary
// queda con a lo sumo una fila true por producto.
func (r *SupplierRepo) LinkToProduct(productID, supplierID string, isPrimary bool) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin link supplier: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if isPrimary {
		if _, err := tx.Exec(ctx,
			`UPDATE product_suppliers SET is_primary = false WHERE product_id = $1 AND is_primary`,
			productID,
		); err != nil {
			return fmt.Errorf("demote primary supplier: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = EXCLUDED.is_primary`,
		productID, supplierID, isPrimary,
	); err != nil {
		return fmt.Errorf("link supplier: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit link supplier: %w", err)
	}
	return nil
}

// ListByProduct lista los proveedores de un producto, primario primero.
func (r *SupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email, s.phone, s.created_at, s.updated_at
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY ps.is_primary DESC, ps.created_at`
	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
