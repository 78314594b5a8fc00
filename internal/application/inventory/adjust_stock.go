package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// AdjustStockUseCase aplica un delta de cantidad a una fila de inventario
// de forma transaccional: bloquea la fila (SELECT FOR UPDATE), actualiza
// la cantidad y anota la transición en el historial append-only.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// Execute aplica el ajuste. El stock resultante nunca puede quedar
// negativo (ErrInsufficientStock). Cada cambio de cantidad deja exactamente
// una fila de historial con previous/new, en la misma transacción.
func (uc *AdjustStockUseCase) Execute(ctx context.Context, in dto.AdjustStockRequest) (*entity.Inventory, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.QuantityChange == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newQty := inv.Quantity + in.QuantityChange
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		previous := inv.Quantity
		now := time.Now()
		inv.Quantity = newQty
		inv.UpdatedAt = now
		if err := invRepo.UpdateQuantity(inv); err != nil {
			return err
		}
		if err := histRepo.Append(&entity.InventoryHistory{
			ID:               uuid.New().String(),
			InventoryID:      inv.ID,
			PreviousQuantity: previous,
			NewQuantity:      newQty,
			ChangedAt:        now,
		}); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
