package inventory_test

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// fakeStore estado compartido en memoria que simula la base de datos.
type fakeStore struct {
	products    []*entity.Product
	inventories []*entity.Inventory
	history     []*entity.InventoryHistory
}

func (s *fakeStore) snapshot() fakeStore {
	return fakeStore{
		products:    append([]*entity.Product(nil), s.products...),
		inventories: append([]*entity.Inventory(nil), s.inventories...),
		history:     append([]*entity.InventoryHistory(nil), s.history...),
	}
}

func (s *fakeStore) restore(snap fakeStore) {
	s.products = snap.products
	s.inventories = snap.inventories
	s.history = snap.history
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	store     *fakeStore
	createErr error
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *p
	r.store.products = append(r.store.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.store.products {
		if existing.ID == p.ID {
			cp := *p
			r.store.products[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.store.products, nil
}

type fakeInventoryRepo struct {
	store     *fakeStore
	createErr error
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *inv
	r.store.inventories = append(r.store.inventories, &cp)
	return nil
}

func (r *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeInventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	for i, existing := range r.store.inventories {
		if existing.ID == inv.ID {
			cp := *inv
			r.store.inventories[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	store *fakeStore
}

func (r *fakeHistoryRepo) Append(h *entity.InventoryHistory) error {
	cp := *h
	r.store.history = append(r.store.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range r.store.history {
		if h.InventoryID == inventoryID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeTxRunner simula la transacción: si fn (o el commit inyectado) falla,
// el estado vuelve al snapshot previo, como haría un rollback real.
type fakeTxRunner struct {
	store      *fakeStore
	productErr error
	invErr     error
	commitErr  error
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeProductRepo{store: r.store, createErr: r.productErr},
		&fakeInventoryRepo{store: r.store, createErr: r.invErr},
		&fakeHistoryRepo{store: r.store},
	)
	if err == nil {
		err = r.commitErr
	}
	if err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// ── Helpers de payload ────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func raw(literal string) json.RawMessage { return json.RawMessage(literal) }
