package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/application/usecase"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
)

func validProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:          "SOFA-001",
		Name:          "Sofá tres puestos",
		ProductType:   1,
		Status:        0,
		PurchasePrice: decimal.RequireFromString("850000"),
		SalePrice:     decimal.RequireFromString("1290000"),
		StockQuantity: 5,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(validProductRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotZero(t, resp.ID, "el ID lo asigna la persistencia")
	assert.Equal(t, "SOFA-001", resp.Code)
	assert.Equal(t, int64(5), resp.StockQuantity)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(validProductRequest())
	require.NoError(t, err)

	dup := validProductRequest()
	dup.Name = "Otro sofá"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el código de producto es único")
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	req := validProductRequest()
	req.SalePrice = decimal.RequireFromString("-1")
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precios negativos se rechazan")
}

func TestProductCreate_DimensionCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	zero := decimal.Zero
	req := validProductRequest()
	req.Width = &zero
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"las dimensiones son opcionales pero estrictamente positivas si vienen")
}

func TestProductCreate_DimensionPositivaOK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	w := decimal.RequireFromString("2.10")
	req := validProductRequest()
	req.Width = &w
	resp, err := uc.Create(req)
	require.NoError(t, err)
	require.NotNil(t, resp.Width)
	assert.True(t, resp.Width.Equal(w))
}

func TestProductCreate_TipoFueraDeRango(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	req := validProductRequest()
	req.ProductType = 100
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la etiqueta gte/lte del request corta antes del dominio")
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(validProductRequest())
	require.NoError(t, err)

	name := "Sofá renombrado"
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sofá renombrado", resp.Name)
	assert.Equal(t, int64(5), resp.StockQuantity,
		"el stock solo se mueve con movimientos de inventario")
}

func TestProductUpdate_CodigoOcupado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(validProductRequest())
	require.NoError(t, err)

	other := validProductRequest()
	other.Code = "MESA-001"
	second, err := uc.Create(other)
	require.NoError(t, err)

	taken := "SOFA-001"
	_, err = uc.Update(second.ID, dto.UpdateProductRequest{Code: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	name := "Nada"
	_, err := uc.Update(404, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_NoEncontradoDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	resp, err := uc.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, resp, "no encontrado es (nil, nil), no un error")
}
