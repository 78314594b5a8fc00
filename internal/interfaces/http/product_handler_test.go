package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventory-alerts/internal/interfaces/http"
)

// ── Fakes mínimos del pipeline de escritura ───────────────────────────────────

type stubProductRepo struct {
	bySKU     *entity.Product
	createErr error
	created   []*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, p)
	return nil
}
func (r *stubProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) {
	return r.bySKU, nil
}
func (r *stubProductRepo) Update(*entity.Product) error { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error) {
	return nil, nil
}

type stubInventoryRepo struct{ createErr error }

func (r *stubInventoryRepo) Create(*entity.Inventory) error { return r.createErr }
func (r *stubInventoryRepo) Get(string, string) (*entity.Inventory, error) {
	return nil, nil
}
func (r *stubInventoryRepo) GetForUpdate(string, string) (*entity.Inventory, error) {
	return nil, nil
}
func (r *stubInventoryRepo) UpdateQuantity(*entity.Inventory) error { return nil }
func (r *stubInventoryRepo) ListByProduct(string) ([]*entity.Inventory, error) {
	return nil, nil
}

type stubHistoryRepo struct{}

func (stubHistoryRepo) Append(*entity.InventoryHistory) error { return nil }
func (stubHistoryRepo) ListByInventory(string, int, int) ([]*entity.InventoryHistory, error) {
	return nil, nil
}

type stubTxRunner struct {
	productRepo *stubProductRepo
	invRepo     *stubInventoryRepo
}

func (r *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	return fn(r.productRepo, r.invRepo, stubHistoryRepo{})
}

func buildProductApp(productRepo *stubProductRepo, invRepo *stubInventoryRepo) *fiber.App {
	uc := inventory.NewCreateProductUseCase(
		&stubTxRunner{productRepo: productRepo, invRepo: invRepo},
		productRepo,
	)
	handler := apphttp.NewProductHandler(uc, nil)
	app := fiber.New()
	app.Post("/api/products", handler.Create)
	return app
}

func postProducts(t *testing.T, app *fiber.App, body string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(raw)
}

// ── Contrato del endpoint ─────────────────────────────────────────────────────

func TestProductHandler_Create_201(t *testing.T) {
	repo := &stubProductRepo{}
	app := buildProductApp(repo, &stubInventoryRepo{})

	resp, body := postProducts(t, app,
		`{"name":"Teclado","sku":"TEC-001","price":"19.99","warehouse_id":"wh-1","initial_quantity":50}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, `"message"`)
	assert.Contains(t, body, `"product_id"`)
	require.Len(t, repo.created, 1)
	assert.Contains(t, body, repo.created[0].ID)
}

func TestProductHandler_Create_CampoFaltante400(t *testing.T) {
	app := buildProductApp(&stubProductRepo{}, &stubInventoryRepo{})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"sin name", `{"sku":"TEC-001","price":1,"warehouse_id":"wh-1","initial_quantity":1}`,
			`{"error":"name is required"}`},
		{"sin sku", `{"name":"Teclado","price":1,"warehouse_id":"wh-1","initial_quantity":1}`,
			`{"error":"sku is required"}`},
		{"sin price", `{"name":"Teclado","sku":"TEC-001","warehouse_id":"wh-1","initial_quantity":1}`,
			`{"error":"price is required"}`},
		{"sin warehouse_id", `{"name":"Teclado","sku":"TEC-001","price":1,"initial_quantity":1}`,
			`{"error":"warehouse_id is required"}`},
		{"sin initial_quantity", `{"name":"Teclado","sku":"TEC-001","price":1,"warehouse_id":"wh-1"}`,
			`{"error":"initial_quantity is required"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := postProducts(t, app, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, tc.want, body)
		})
	}
}

func TestProductHandler_Create_SKUDuplicado409(t *testing.T) {
	repo := &stubProductRepo{bySKU: &entity.Product{ID: "p-1", SKU: "TEC-001"}}
	app := buildProductApp(repo, &stubInventoryRepo{})

	resp, body := postProducts(t, app,
		`{"name":"Teclado","sku":"TEC-001","price":"19.99","warehouse_id":"wh-1","initial_quantity":50}`)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"error":"SKU already exists"}`, body)
}

// Un fallo de persistencia produce 500 con mensaje genérico: los internos
// del storage jamás llegan al cliente.
func TestProductHandler_Create_FalloPersistencia500(t *testing.T) {
	app := buildProductApp(&stubProductRepo{},
		&stubInventoryRepo{createErr: errors.New("pq: deadlock detected on relation inventory")})

	resp, body := postProducts(t, app,
		`{"name":"Teclado","sku":"TEC-001","price":"19.99","warehouse_id":"wh-1","initial_quantity":50}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Database error occurred"}`, body)
	assert.NotContains(t, body, "deadlock", "el detalle interno no debe filtrarse")
}

func TestProductHandler_Create_CuerpoInvalido400(t *testing.T) {
	app := buildProductApp(&stubProductRepo{}, &stubInventoryRepo{})

	resp, _ := postProducts(t, app, `{"name": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
