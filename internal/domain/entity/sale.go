package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta (cabecera). CustomerID es opcional (venta de
// mostrador); CreatedBy es el usuario que registró la venta. Invariante:
// PaidTotal nunca supera Total — la base de datos lo garantiza con un check.
// La venta es un registro contable: una vez creada solo avanza PaidTotal al
// registrar abonos.
type Sale struct {
	ID         int64
	CustomerID *int64
	CreatedBy  int64
	Total      decimal.Decimal // >= 0
	PaidTotal  decimal.Decimal // >= 0, <= Total
	Status     SaleStatus
	CreatedAt  time.Time
}

// SaleItem línea de venta. Identidad compuesta (SaleID, ProductID): un
// producto aparece a lo sumo una vez por venta. UnitPrice y UnitCost son
// capturas al momento de la transacción, independientes del precio vigente
// del producto, para conservar la analítica de margen histórica.
type SaleItem struct {
	SaleID    int64
	ProductID int64
	Quantity  int64           // > 0
	UnitPrice decimal.Decimal // >= 0
	UnitCost  decimal.Decimal // >= 0
}

// Subtotal de la línea: Quantity * UnitPrice.
func (i SaleItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}

// CostTotal costo total de la línea: Quantity * UnitCost.
func (i SaleItem) CostTotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitCost)
}
