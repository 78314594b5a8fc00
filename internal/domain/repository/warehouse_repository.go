package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
}
