package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

func TestProductCreate_Basico(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(testAdminID, dto.CreateProductRequest{
		Name:          "Laptop",
		SKU:           "SKU-LAP-001",
		Category:      "Electronics",
		UnitPrice:     decimal.RequireFromString("899.99"),
		Quantity:      45,
		LowStockLimit: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "debe asignarse un ID")
	assert.Equal(t, testAdminID, out.AdminID)
	assert.Equal(t, 45, out.Quantity)
}

func TestProductCreate_SKUDuplicadoPorDueno(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", 45))
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(testAdminID, dto.CreateProductRequest{
		Name: "Laptop Pro",
		SKU:  "SKU-LAP-001", // mismo SKU del fixture
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo SKU bajo otro dueño sí es válido.
	_, err = uc.Create(otherAdminID, dto.CreateProductRequest{
		Name: "Laptop Pro",
		SKU:  "SKU-LAP-001",
	})
	assert.NoError(t, err, "el SKU es único por dueño, no global")
}

func TestProductCreate_RechazaNegativos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(testAdminID, dto.CreateProductRequest{Name: "X", SKU: "S1", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(testAdminID, dto.CreateProductRequest{Name: "X", SKU: "S2", LowStockLimit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_ParcialYNoTocaStock(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", 45))
	uc := usecase.NewProductUseCase(repo)

	name := "Laptop 14\""
	limit := 8
	out, err := uc.Update("p1", testAdminID, dto.UpdateProductRequest{
		Name:          &name,
		LowStockLimit: &limit,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Laptop 14\"", out.Name)
	assert.Equal(t, 8, out.LowStockLimit)
	assert.Equal(t, 45, out.Quantity, "el stock no se edita por esta vía")
	assert.Equal(t, "SKU-LAP-001", out.SKU, "el SKU no cambia en un update parcial")
}

func TestProductUpdate_OtroDuenoEsInexistente(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", 45))
	uc := usecase.NewProductUseCase(repo)

	name := "Hackeado"
	out, err := uc.Update("p1", otherAdminID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "un producto de otro dueño debe responder como inexistente")
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.GetByID("no-such")
	require.NoError(t, err)
	assert.Nil(t, out)
}
