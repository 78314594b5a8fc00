package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo adaptador del historial append-only de cantidades.
// No expone Update ni Delete: las transiciones se escriben una vez.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx.
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append inserta una transición de cantidad.
func (r *InventoryHistoryRepo) Append(h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (id, inventory_id, previous_quantity, new_quantity, changed_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.InventoryID, h.PreviousQuantity, h.NewQuantity, h.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("append inventory history: %w", err)
	}
	return nil
}

// ListByInventory lista el historial de una fila de inventario, reciente primero.
func (r *InventoryHistoryRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, inventory_id, previous_quantity, new_quantity, changed_at
		FROM inventory_history WHERE inventory_id = $1
		ORDER BY changed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.PreviousQuantity, &h.NewQuantity, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
