package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// InventoryRepository define el puerto para la fila (producto, bodega).
// Create se usa dentro de la transacción de creación de producto;
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para los ajustes.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	Get(productID, warehouseID string) (*entity.Inventory, error)
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(inv *entity.Inventory) error
	ListByProduct(productID string) ([]*entity.Inventory, error)
}
