package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto. Los precios y
// dimensiones (decimal) se validan en el caso de uso; los códigos enumerados
// llevan la guarda de rango [0,99] aquí.
type CreateProductRequest struct {
	Code          string           `json:"code" validate:"required,max=50"`
	Name          string           `json:"name" validate:"required,max=150"`
	ProductType   int16            `json:"product_type" validate:"gte=0,lte=99"`
	Size          *string          `json:"size,omitempty" validate:"omitempty,max=50"`
	Color         *string          `json:"color,omitempty" validate:"omitempty,max=50"`
	Brand         *string          `json:"brand,omitempty" validate:"omitempty,max=80"`
	Location      *string          `json:"location,omitempty" validate:"omitempty,max=120"`
	Width         *decimal.Decimal `json:"width,omitempty"`
	Height        *decimal.Decimal `json:"height,omitempty"`
	Depth         *decimal.Decimal `json:"depth,omitempty"`
	Status        int16            `json:"status" validate:"gte=0,lte=99"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	StockQuantity int64            `json:"stock_quantity" validate:"gte=0"`
}

// UpdateProductRequest datos parciales para actualizar un producto. Los
// campos nil no se tocan. El stock no se actualiza por aquí: solo vía
// movimientos de inventario.
type UpdateProductRequest struct {
	Code          *string          `json:"code,omitempty" validate:"omitempty,max=50"`
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	ProductType   *int16           `json:"product_type,omitempty" validate:"omitempty,gte=0,lte=99"`
	Size          *string          `json:"size,omitempty" validate:"omitempty,max=50"`
	Color         *string          `json:"color,omitempty" validate:"omitempty,max=50"`
	Brand         *string          `json:"brand,omitempty" validate:"omitempty,max=80"`
	Location      *string          `json:"location,omitempty" validate:"omitempty,max=120"`
	Width         *decimal.Decimal `json:"width,omitempty"`
	Height        *decimal.Decimal `json:"height,omitempty"`
	Depth         *decimal.Decimal `json:"depth,omitempty"`
	Status        *int16           `json:"status,omitempty" validate:"omitempty,gte=0,lte=99"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID            int64            `json:"id"`
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	ProductType   int16            `json:"product_type"`
	Size          *string          `json:"size,omitempty"`
	Color         *string          `json:"color,omitempty"`
	Brand         *string          `json:"brand,omitempty"`
	Location      *string          `json:"location,omitempty"`
	Width         *decimal.Decimal `json:"width,omitempty"`
	Height        *decimal.Decimal `json:"height,omitempty"`
	Depth         *decimal.Decimal `json:"depth,omitempty"`
	Status        int16            `json:"status"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	StockQuantity int64            `json:"stock_quantity"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
