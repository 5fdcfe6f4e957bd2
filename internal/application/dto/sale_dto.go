package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta nueva. UnitPrice nil toma el precio de
// venta vigente del producto; el costo se captura siempre del producto.
type SaleItemRequest struct {
	ProductID int64            `json:"product_id" validate:"required,gt=0"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// InitialPaymentRequest abono inicial opcional registrado junto con la venta.
type InitialPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method int16           `json:"method" validate:"gte=0,lte=99"`
	Notes  *string         `json:"notes,omitempty"`
}

// CreateSaleRequest datos para crear una venta con sus líneas. CustomerID es
// opcional (venta de mostrador).
type CreateSaleRequest struct {
	CustomerID     *int64                 `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	CreatedBy      int64                  `json:"created_by" validate:"required,gt=0"`
	Status         int16                  `json:"status" validate:"gte=0,lte=99"`
	Items          []SaleItemRequest      `json:"items" validate:"required,min=1,dive"`
	InitialPayment *InitialPaymentRequest `json:"initial_payment,omitempty"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación de una venta con sus líneas.
type SaleResponse struct {
	ID         int64              `json:"id"`
	CustomerID *int64             `json:"customer_id,omitempty"`
	CreatedBy  int64              `json:"created_by"`
	Total      decimal.Decimal    `json:"total"`
	PaidTotal  decimal.Decimal    `json:"paid_total"`
	Status     int16              `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []SaleItemResponse `json:"items"`
}

// SaleListResponse listado paginado de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
