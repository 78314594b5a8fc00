package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// CreateProductUseCase crea un producto junto con su primera fila de
// inventario como unidad todo-o-nada. Valida en orden fijo (primer fallo
// gana): presencia de campos, unicidad de SKU, parseo de precio.
type CreateProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// requiredFields enumeración explícita del orden de chequeo de presencia.
var requiredFields = []string{"name", "sku", "price", "warehouse_id", "initial_quantity"}

// Execute valida la entrada y persiste Product + Inventory en una sola
// transacción. Devuelve el producto creado.
//
// Una violación del índice único de SKU detectada recién en el commit
// (carrera perdida contra un escritor concurrente) se reporta como el
// mismo ErrSKUConflict del pre-chequeo, nunca como error genérico.
func (uc *CreateProductUseCase) Execute(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	// (a) Presencia de cada campo requerido, en orden fijo.
	for _, field := range requiredFields {
		if err := checkPresence(field, in); err != nil {
			return nil, err
		}
	}

	// (b) Pre-chequeo consultivo de unicidad de SKU. Evita la carrera en el
	// caso común; la autoridad final es el índice único en el commit.
	if existing, _ := uc.productRepo.GetBySKU(*in.SKU); existing != nil {
		return nil, domain.ErrSKUConflict
	}

	// (c) Parseo exacto del precio (sin paso intermedio por float).
	price, err := parseDecimalField("price", in.Price)
	if err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, domain.NewInvalidFieldError("price", "must not be negative")
	}
	if *in.InitialQuantity < 0 {
		return nil, domain.NewInvalidFieldError("initial_quantity", "must be a non-negative integer")
	}

	// Configuración de alertas, opcional al crear.
	var threshold int64
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.NewInvalidFieldError("low_stock_threshold", "must be a non-negative integer")
		}
		threshold = *in.LowStockThreshold
	}
	avgDailySales := decimal.Zero
	if len(in.AvgDailySales) > 0 && string(in.AvgDailySales) != "null" {
		avgDailySales, err = parseDecimalField("avg_daily_sales", in.AvgDailySales)
		if err != nil {
			return nil, err
		}
	}
	hasRecentSales := in.HasRecentSales != nil && *in.HasRecentSales

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               *in.SKU,
		Name:              *in.Name,
		Price:             price,
		LowStockThreshold: threshold,
		AvgDailySales:     avgDailySales,
		HasRecentSales:    hasRecentSales,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: *in.WarehouseID,
		Quantity:    *in.InitialQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Transacción: ambas filas quedan visibles o ninguna.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		_ repository.InventoryHistoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.Create(inv)
	})
	if err != nil {
		if errors.Is(err, domain.ErrSKUConflict) {
			return nil, domain.ErrSKUConflict
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return product, nil
}

// checkPresence falla con "<field> is required" si el campo está ausente
// (o vacío, para strings) en el payload.
func checkPresence(field string, in dto.CreateProductRequest) error {
	missing := false
	switch field {
	case "name":
		missing = in.Name == nil || *in.Name == ""
	case "sku":
		missing = in.SKU == nil || *in.SKU == ""
	case "price":
		missing = len(in.Price) == 0 || string(in.Price) == "null"
	case "warehouse_id":
		missing = in.WarehouseID == nil || *in.WarehouseID == ""
	case "initial_quantity":
		missing = in.InitialQuantity == nil
	}
	if missing {
		return domain.NewMissingFieldError(field)
	}
	return nil
}

// parseDecimalField parsea un literal JSON (número o string) a decimal
// exacto. Nunca pasa por float64: el texto del literal va directo a
// decimal.NewFromString, así "19.99" se conserva como 19.99.
func parseDecimalField(field string, raw json.RawMessage) (decimal.Decimal, error) {
	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, domain.NewInvalidFieldError(field, "must be a valid decimal number")
		}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, domain.NewInvalidFieldError(field, "must be a valid decimal number")
	}
	return d, nil
}
