package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El SKU es único a nivel plataforma: GetBySKU sirve al pre-chequeo
// consultivo del pipeline de escritura; el índice único de la BD es la
// autoridad final.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
