package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta la fila (producto, bodega). Los FKs a products y
// warehouses respaldan el invariante de que la fila no existe sin ambos.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene la fila de inventario de un producto en una bodega.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID))
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) para que
// ajustes concurrentes sobre el mismo par se serialicen.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID))
}

// UpdateQuantity persiste la nueva cantidad de una fila existente.
func (r *InventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.Quantity, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// ListByProduct lista las ubicaciones de un producto (cero, una o varias bodegas).
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}
