package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// InventoryHistoryRepository define el puerto del historial de cantidades.
// Solo inserción: el historial es append-only.
type InventoryHistoryRepository interface {
	Append(h *entity.InventoryHistory) error
	ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error)
}
