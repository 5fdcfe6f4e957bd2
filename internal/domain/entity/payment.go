package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un abono a una venta. Amount es estrictamente positivo:
// no existen pagos de cero. Registro contable inmutable.
type Payment struct {
	ID         int64
	SaleID     int64
	CustomerID *int64
	CreatedBy  int64
	Amount     decimal.Decimal // > 0
	Method     PaymentMethod
	Notes      *string
	CreatedAt  time.Time
}
