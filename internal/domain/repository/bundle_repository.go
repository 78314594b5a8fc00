package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// BundleRepository define el puerto para composiciones de productos.
type BundleRepository interface {
	Create(b *entity.Bundle) error
	ListByParent(parentProductID string) ([]*entity.Bundle, error)
}
