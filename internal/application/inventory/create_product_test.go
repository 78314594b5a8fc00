package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
)

func newCreateUseCase(store *fakeStore) *inventory.CreateProductUseCase {
	return inventory.NewCreateProductUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
	)
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            strPtr("Teclado mecánico"),
		SKU:             strPtr("TEC-001"),
		Price:           raw(`19.99`),
		WarehouseID:     strPtr("wh-1"),
		InitialQuantity: i64Ptr(50),
	}
}

// Caso feliz: una fila de producto y una de inventario, ambas visibles.
func TestCreateProduct_Exitoso(t *testing.T) {
	store := &fakeStore{}
	uc := newCreateUseCase(store)

	product, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEmpty(t, product.ID)

	require.Len(t, store.products, 1)
	require.Len(t, store.inventories, 1)
	assert.Equal(t, "TEC-001", store.products[0].SKU)
	assert.Equal(t, product.ID, store.inventories[0].ProductID)
	assert.Equal(t, "wh-1", store.inventories[0].WarehouseID)
	assert.Equal(t, int64(50), store.inventories[0].Quantity)
}

// El precio se conserva como decimal exacto, sin paso por float:
// "19.99" entra y sale como 19.99.
func TestCreateProduct_PrecioDecimalExacto(t *testing.T) {
	cases := []struct {
		name  string
		price string
	}{
		{"literal numérico", `19.99`},
		{"literal string", `"19.99"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			in := validRequest()
			in.Price = raw(tc.price)

			product, err := newCreateUseCase(store).Execute(context.Background(), in)
			require.NoError(t, err)
			assert.True(t, product.Price.Equal(decimal.RequireFromString("19.99")),
				"el precio debe conservarse exacto, se obtuvo %s", product.Price)
			assert.Equal(t, "19.99", product.Price.String())
		})
	}
}

// La validación es fail-fast en orden fijo: name, sku, price, warehouse_id,
// initial_quantity. Gana el primer campo faltante.
func TestCreateProduct_OrdenDeValidacion(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateProductRequest)
		wantMsg string
	}{
		{"todo ausente gana name", func(in *dto.CreateProductRequest) {
			*in = dto.CreateProductRequest{}
		}, "name is required"},
		{"name vacío cuenta como ausente", func(in *dto.CreateProductRequest) {
			in.Name = strPtr("")
		}, "name is required"},
		{"sin sku ni price gana sku", func(in *dto.CreateProductRequest) {
			in.SKU = nil
			in.Price = nil
		}, "sku is required"},
		{"sin price ni warehouse gana price", func(in *dto.CreateProductRequest) {
			in.Price = nil
			in.WarehouseID = nil
		}, "price is required"},
		{"price null literal cuenta como ausente", func(in *dto.CreateProductRequest) {
			in.Price = raw(`null`)
		}, "price is required"},
		{"sin warehouse_id", func(in *dto.CreateProductRequest) {
			in.WarehouseID = nil
		}, "warehouse_id is required"},
		{"sin initial_quantity", func(in *dto.CreateProductRequest) {
			in.InitialQuantity = nil
		}, "initial_quantity is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			in := validRequest()
			tc.mutate(&in)

			_, err := newCreateUseCase(store).Execute(context.Background(), in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantMsg, vErr.Message)
			assert.Empty(t, store.products, "una validación fallida no debe persistir nada")
			assert.Empty(t, store.inventories)
		})
	}
}

// El chequeo de unicidad de SKU corre después de la presencia y antes del
// parseo de precio.
func TestCreateProduct_SKUDuplicado(t *testing.T) {
	store := &fakeStore{products: []*entity.Product{{
		ID: "p-1", SKU: "TEC-001", Name: "Existente",
	}}}

	in := validRequest()
	in.Price = raw(`"no-es-numero"`) // no debe llegar a parsearse

	_, err := newCreateUseCase(store).Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrSKUConflict)
	assert.Len(t, store.products, 1, "no debe crearse un segundo producto")
	assert.Empty(t, store.inventories)
}

// Una carrera perdida contra un escritor concurrente aflora como violación
// del índice único recién en el commit: debe verse igual que el pre-chequeo
// (conflicto, no error genérico).
func TestCreateProduct_SKUDuplicado_CarreraEnCommit(t *testing.T) {
	store := &fakeStore{}
	uc := inventory.NewCreateProductUseCase(
		&fakeTxRunner{store: store, commitErr: domain.ErrSKUConflict},
		&fakeProductRepo{store: store},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrSKUConflict)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, store.products, "la transacción debió revertirse")
	assert.Empty(t, store.inventories)
}

func TestCreateProduct_ValoresInvalidos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"precio malformado", func(in *dto.CreateProductRequest) { in.Price = raw(`"abc"`) }},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.Price = raw(`-1.50`) }},
		{"cantidad inicial negativa", func(in *dto.CreateProductRequest) { in.InitialQuantity = i64Ptr(-3) }},
		{"umbral negativo", func(in *dto.CreateProductRequest) { in.LowStockThreshold = i64Ptr(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			in := validRequest()
			tc.mutate(&in)

			_, err := newCreateUseCase(store).Execute(context.Background(), in)
			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Empty(t, store.products)
		})
	}
}

// Atomicidad: si la fila de inventario falla, el producto tampoco queda.
func TestCreateProduct_FalloEnInventario_RevierteProducto(t *testing.T) {
	store := &fakeStore{}
	uc := inventory.NewCreateProductUseCase(
		&fakeTxRunner{store: store, invErr: errors.New("constraint violation")},
		&fakeProductRepo{store: store},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, store.products, "el producto no debe ser visible sin su inventario")
	assert.Empty(t, store.inventories)
}

// La configuración de alertas es opcional y se persiste cuando viene.
func TestCreateProduct_ConfiguracionDeAlertas(t *testing.T) {
	store := &fakeStore{}
	in := validRequest()
	in.LowStockThreshold = i64Ptr(10)
	in.AvgDailySales = raw(`2.5`)
	hasSales := true
	in.HasRecentSales = &hasSales

	product, err := newCreateUseCase(store).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.LowStockThreshold)
	assert.True(t, product.AvgDailySales.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, product.HasRecentSales)
	assert.WithinDuration(t, time.Now(), product.CreatedAt, time.Minute)
}
