package inventory

import (
	"context"

	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad de atomicidad del pipeline
// de escritura: o todo lo que hace fn queda visible, o nada.
// El rollback está garantizado en todo camino de salida, incluidos panics.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error) error
}
