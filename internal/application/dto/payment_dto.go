package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest datos para registrar un abono a una venta existente.
type RegisterPaymentRequest struct {
	SaleID    int64           `json:"sale_id" validate:"required,gt=0"`
	CreatedBy int64           `json:"created_by" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
	Method    int16           `json:"method" validate:"gte=0,lte=99"`
	Notes     *string         `json:"notes,omitempty"`
}

// PaymentResponse representación de un abono en respuestas.
type PaymentResponse struct {
	ID         int64           `json:"id"`
	SaleID     int64           `json:"sale_id"`
	CustomerID *int64          `json:"customer_id,omitempty"`
	CreatedBy  int64           `json:"created_by"`
	Amount     decimal.Decimal `json:"amount"`
	Method     int16           `json:"method"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	// SalePaidTotal acumulado pagado de la venta después de este abono.
	SalePaidTotal decimal.Decimal `json:"sale_paid_total"`
}
