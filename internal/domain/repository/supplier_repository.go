package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y su
// asociación con productos. LinkToProduct con isPrimary=true debe demover
// cualquier primario anterior del producto (a lo sumo uno por producto).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	LinkToProduct(productID, supplierID string, isPrimary bool) error
	ListByProduct(productID string) ([]*entity.Supplier, error)
}
