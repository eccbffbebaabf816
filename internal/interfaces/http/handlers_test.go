package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminID   = "admin-1"
	testPassword  = "admin123"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los puertos que ejercitan estos tests
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByAdminAndSKU(adminID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.AdminID == adminID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int) error {
	r.products[productID].Quantity = quantity
	return nil
}

func (r *fakeProductRepo) ListByAdmin(adminID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.AdminID == adminID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeDeliveryRepo struct {
	deliveries map[string]*entity.Delivery
}

func (r *fakeDeliveryRepo) Create(d *entity.Delivery) error {
	r.deliveries[d.ID] = d
	return nil
}

func (r *fakeDeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	return r.deliveries[id], nil
}

func (r *fakeDeliveryRepo) ListByAdmin(adminID string) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range r.deliveries {
		if d.AdminID == adminID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDeliveryRepo) UpdateStatus(id string, status domain.Status) error {
	r.deliveries[id].Status = status
	return nil
}

type fakeAnalyticsRepo struct {
	products, receipts, deliveries, transfers int
}

func (r *fakeAnalyticsRepo) CountProducts(context.Context, string) (int, error) {
	return r.products, nil
}

func (r *fakeAnalyticsRepo) CountPendingReceipts(context.Context, string) (int, error) {
	return r.receipts, nil
}

func (r *fakeAnalyticsRepo) CountPendingDeliveries(context.Context, string) (int, error) {
	return r.deliveries, nil
}

func (r *fakeAnalyticsRepo) CountTransfers(context.Context, string) (int, error) {
	return r.transfers, nil
}

func (r *fakeAnalyticsRepo) RecentOperations(context.Context, string) ([]entity.Operation, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) LatestLocations(context.Context, string) (map[string]string, error) {
	return nil, nil
}

// fakeTxRunner corre fn directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	deliveryRepo *fakeDeliveryRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	return fn(r.productRepo, r.deliveryRepo, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func jsonRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           testAdminID,
		Name:         "John Doe",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
}

// buildTestApp arma la aplicación con todos los use cases sobre fakes.
func buildTestApp(t *testing.T, userRepo *fakeUserRepo, productRepo *fakeProductRepo, deliveryRepo *fakeDeliveryRepo) *fiber.App {
	t.Helper()
	if deliveryRepo.deliveries == nil {
		deliveryRepo.deliveries = make(map[string]*entity.Delivery)
	}
	tx := &fakeTxRunner{productRepo: productRepo, deliveryRepo: deliveryRepo}
	analyticsRepo := &fakeAnalyticsRepo{products: 3, receipts: 1, deliveries: 2, transfers: 4}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: "stockmaster-test",
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   usecase.NewProductUseCase(productRepo),
		DeliveryUC:  usecase.NewDeliveryUseCase(tx, deliveryRepo),
		OverviewUC:  analytics.NewOverviewUseCase(productRepo, analyticsRepo),
		DashboardUC: analytics.NewDashboardUseCase(analyticsRepo),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/auth/signin
// ──────────────────────────────────────────────────────────────────────────────

func TestSigninEndpoint_CredencialesValidas(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/signin",
		fiber.Map{"email": "admin@example.com", "password": testPassword})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"], "la respuesta debe traer el JWT")
	assert.Equal(t, "/api/dashboard/"+testAdminID, body["dashboard_url"])
}

func TestSigninEndpoint_EmailDesconocido401(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/signin",
		fiber.Map{"email": "nadie@example.com", "password": testPassword})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"],
		"email desconocido y password incorrecto deben responder idéntico")
}

func TestSigninEndpoint_PasswordIncorrecto401(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/signin",
		fiber.Map{"email": "admin@example.com", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSigninEndpoint_SinCampos400(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/signin", fiber.Map{"email": "x@y.z"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductAddEndpoint_Crea201(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/add/"+testAdminID,
		fiber.Map{"name": "Laptop", "sku": "SKU-LAP-001", "quantity": 45, "low_stock_limit": 10})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testAdminID, body["admin_id"], "el producto debe quedar escopado al dueño del path")
}

func TestProductAddEndpoint_SKUDuplicado409(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p1", AdminID: testAdminID, Name: "Laptop", SKU: "SKU-LAP-001",
	})
	app := buildTestApp(t, &fakeUserRepo{}, productRepo, &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/add/"+testAdminID,
		fiber.Map{"name": "Laptop Pro", "sku": "SKU-LAP-001"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeBody(t, resp)["code"])
}

func TestProductAddEndpoint_SinNombre400(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/add/"+testAdminID,
		fiber.Map{"sku": "SKU-X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}

func TestProductDetailsEndpoint_Inexistente404(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodGet, "/api/product/details/no-such", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Deliveries — creación con decremento y PATCH de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestDeliveryAddEndpoint_DescuentaStock(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p1", AdminID: testAdminID, Name: "Laptop", SKU: "SKU-LAP-001", Quantity: 50,
	})
	app := buildTestApp(t, &fakeUserRepo{}, productRepo, &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/deliveries/add/"+testAdminID,
		fiber.Map{"product_id": "p1", "customer": "Acme Corp", "quantity": 5, "date": "2024-06-01"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 45, productRepo.products["p1"].Quantity)
}

func TestDeliveryStatusEndpoint_TransicionInvalida409(t *testing.T) {
	deliveryRepo := &fakeDeliveryRepo{deliveries: map[string]*entity.Delivery{
		"d1": {ID: "d1", AdminID: testAdminID, Status: domain.StatusDelivered},
	}}
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), deliveryRepo)

	resp := jsonRequest(t, app, http.MethodPatch, "/api/deliveries/d1/status/"+testAdminID,
		fiber.Map{"status": "Draft"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decodeBody(t, resp)["code"])
}

func TestDeliveryStatusEndpoint_OtroDueno404(t *testing.T) {
	deliveryRepo := &fakeDeliveryRepo{deliveries: map[string]*entity.Delivery{
		"d1": {ID: "d1", AdminID: testAdminID, Status: domain.StatusDraft},
	}}
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), deliveryRepo)

	resp := jsonRequest(t, app, http.MethodPatch, "/api/deliveries/d1/status/admin-2",
		fiber.Map{"status": "Waiting"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un documento de otro dueño debe responder como inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard/:adminId y /api/products/:adminId
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardEndpoint_Resumen(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodGet, "/api/dashboard/"+testAdminID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 3, body["total_products"])
	assert.EqualValues(t, 1, body["pending_receipts"])
	assert.EqualValues(t, 2, body["pending_deliveries"])
	assert.EqualValues(t, 4, body["internal_transfers"])
}

func TestProductListEndpoint_CamposDerivados(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p1", AdminID: testAdminID, Name: "Mouse", SKU: "SKU-MOU-002",
		Quantity: 3, LowStockLimit: 5,
	})
	app := buildTestApp(t, &fakeUserRepo{}, productRepo, &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodGet, "/api/products/"+testAdminID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	row := items[0].(map[string]any)
	assert.Equal(t, "Low", row["status"], "3 <= 5 debe reportar stock bajo")
	assert.Equal(t, "Warehouse A", row["location"], "sin traslados aplica la ubicación por defecto")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/settings/:adminId y /api/profile
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingsEndpoint_DevuelveUsuario(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodGet, "/api/settings/"+testAdminID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@example.com", decodeBody(t, resp)["email"])
}

func TestProfileEndpoint_SinToken401(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileEndpoint_ConTokenDelSignin(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{user: seedUser(t)}, newFakeProductRepo(), &fakeDeliveryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/signin",
		fiber.Map{"email": "admin@example.com", "password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	profileResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, profileResp.StatusCode)
	assert.Equal(t, "John Doe", decodeBody(t, profileResp)["name"])
}
