package usecase

import (
	"time"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// ProductUseCase lecturas y configuración de productos. La creación va por
// el pipeline transaccional (inventory.CreateProductUseCase); el SKU es
// inmutable una vez asignado.
type ProductUseCase struct {
	repo       repository.ProductRepository
	bundleRepo repository.BundleRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, bundleRepo repository.BundleRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, bundleRepo: bundleRepo}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateAlertConfig actualiza la configuración de alertas del producto
// (umbral, ventas diarias promedio y flag de recencia). Es el punto por el
// que el pipeline de ventas upstream publica sus métricas; no toca SKU,
// nombre ni precio.
func (uc *ProductUseCase) UpdateAlertConfig(id string, in dto.UpdateAlertConfigRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.AvgDailySales != nil {
		product.AvgDailySales = *in.AvgDailySales
	}
	if in.HasRecentSales != nil {
		product.HasRecentSales = *in.HasRecentSales
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListComponents lista la composición (bundle) de un producto padre.
func (uc *ProductUseCase) ListComponents(parentProductID string) ([]dto.BundleComponentResponse, error) {
	list, err := uc.bundleRepo.ListByParent(parentProductID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleComponentResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BundleComponentResponse{
			ChildProductID: b.ChildProductID,
			Quantity:       b.Quantity,
		})
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Price:             p.Price,
		LowStockThreshold: p.LowStockThreshold,
		AvgDailySales:     p.AvgDailySales,
		HasRecentSales:    p.HasRecentSales,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
