package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
)

func storeWithInventory(qty int64) *fakeStore {
	return &fakeStore{inventories: []*entity.Inventory{{
		ID: "inv-1", ProductID: "p-1", WarehouseID: "wh-1", Quantity: qty,
	}}}
}

func TestAdjustStock_AplicaDeltaYEscribeHistorial(t *testing.T) {
	store := storeWithInventory(50)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{store: store})

	inv, err := uc.Execute(context.Background(), dto.AdjustStockRequest{
		ProductID: "p-1", WarehouseID: "wh-1", QuantityChange: -20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), inv.Quantity)
	assert.Equal(t, int64(30), store.inventories[0].Quantity)

	// Cada transición deja exactamente una fila de historial previous/new.
	require.Len(t, store.history, 1)
	assert.Equal(t, "inv-1", store.history[0].InventoryID)
	assert.Equal(t, int64(50), store.history[0].PreviousQuantity)
	assert.Equal(t, int64(30), store.history[0].NewQuantity)
}

func TestAdjustStock_StockInsuficiente_NoDejaRastro(t *testing.T) {
	store := storeWithInventory(5)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.AdjustStockRequest{
		ProductID: "p-1", WarehouseID: "wh-1", QuantityChange: -10,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), store.inventories[0].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.history, "un ajuste rechazado no escribe historial")
}

func TestAdjustStock_InventarioInexistente(t *testing.T) {
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{store: &fakeStore{}})

	_, err := uc.Execute(context.Background(), dto.AdjustStockRequest{
		ProductID: "p-x", WarehouseID: "wh-x", QuantityChange: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStock_EntradaInvalida(t *testing.T) {
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{store: &fakeStore{}})

	cases := []dto.AdjustStockRequest{
		{WarehouseID: "wh-1", QuantityChange: 1},              // sin product_id
		{ProductID: "p-1", QuantityChange: 1},                 // sin warehouse_id
		{ProductID: "p-1", WarehouseID: "wh-1"},               // delta cero
	}
	for _, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
