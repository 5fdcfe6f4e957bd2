package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El stock se modifica solo a
// través de movimientos de inventario, nunca por edición directa.
// Las dimensiones físicas son opcionales; si están presentes deben ser > 0.
type Product struct {
	ID            int64
	Code          string // código único
	Name          string
	ProductType   ProductType
	Size          *string
	Color         *string
	Brand         *string
	Location      *string // ubicación física en bodega, texto libre
	Width         *decimal.Decimal
	Height        *decimal.Decimal
	Depth         *decimal.Decimal
	Status        ProductStatus
	PurchasePrice decimal.Decimal // >= 0
	SalePrice     decimal.Decimal // >= 0
	StockQuantity int64           // >= 0, default 0
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
