package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre todo camino de salida
// (error, panic); tras un Commit exitoso es un no-op.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invRepo := NewInventoryRepository(tx)
	histRepo := NewInventoryHistoryRepository(tx)

	if err := fn(productRepo, invRepo, histRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		// Una carrera de SKU perdida puede aflorar recién aquí si el
		// constraint es diferido: debe verse igual que en el pre-chequeo.
		if isUniqueViolation(err) {
			return domain.ErrSKUConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
