package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
)

func TestValidate_CreateUserRequest(t *testing.T) {
	valid := dto.CreateUserRequest{
		FullName: "Ana Pérez",
		Email:    "ana@tienda.local",
		Password: "secreto-largo",
		RoleID:   1,
	}
	assert.NoError(t, dto.Validate(valid))

	invalid := valid
	invalid.Email = "no-es-un-email"
	assert.Error(t, dto.Validate(invalid), "email malformado se rechaza")

	invalid = valid
	invalid.Password = "corto"
	assert.Error(t, dto.Validate(invalid), "password de menos de 8 caracteres se rechaza")

	invalid = valid
	invalid.RoleID = 0
	assert.Error(t, dto.Validate(invalid), "role_id es obligatorio")
}

func TestValidate_CreateSaleRequest(t *testing.T) {
	valid := dto.CreateSaleRequest{
		CreatedBy: 1,
		Items:     []dto.SaleItemRequest{{ProductID: 1, Quantity: 2}},
	}
	assert.NoError(t, dto.Validate(valid))

	assert.Error(t, dto.Validate(dto.CreateSaleRequest{CreatedBy: 1}),
		"una venta necesita al menos una línea")

	badItem := dto.CreateSaleRequest{
		CreatedBy: 1,
		Items:     []dto.SaleItemRequest{{ProductID: 1, Quantity: 0}},
	}
	assert.Error(t, dto.Validate(badItem), "dive valida cada línea: cantidad > 0")

	badStatus := valid
	badStatus.Status = 100
	assert.Error(t, dto.Validate(badStatus), "los códigos enumerados respetan [0,99]")
}

func TestValidate_RegisterMovementRequest(t *testing.T) {
	valid := dto.RegisterMovementRequest{
		ProductID:     1,
		CreatedBy:     1,
		Type:          0,
		Quantity:      5,
		ReferenceType: 1,
	}
	assert.NoError(t, dto.Validate(valid))

	invalid := valid
	invalid.ReferenceType = -1
	assert.Error(t, dto.Validate(invalid))

	invalid = valid
	badID := int64(0)
	invalid.ReferenceID = &badID
	assert.Error(t, dto.Validate(invalid), "reference_id presente debe ser > 0")
}

func TestPageRequest_DefaultPage(t *testing.T) {
	var page dto.PageRequest
	page.DefaultPage()
	assert.Equal(t, 20, page.Limit, "límite por defecto")
	assert.Equal(t, 0, page.Offset)

	page = dto.PageRequest{Limit: 50, Offset: 100}
	page.DefaultPage()
	assert.Equal(t, 50, page.Limit, "los valores explícitos no se tocan")
	assert.Equal(t, 100, page.Offset)
}
