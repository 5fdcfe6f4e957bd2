package entity

// Códigos enumerados del esquema. Se almacenan como SMALLINT con check
// BETWEEN 0 AND 99; los tipos con nombre evitan cruzar un estado de venta
// donde va un método de pago. InRange replica la guarda de la base de datos
// del lado de la aplicación.

const (
	codeMin = 0
	codeMax = 99
)

func codeInRange(c int16) bool {
	return c >= codeMin && c <= codeMax
}

// ProductType categoría del producto (mueble, electrodoméstico, etc.).
type ProductType int16

func (t ProductType) InRange() bool { return codeInRange(int16(t)) }

// ProductStatus estado del producto en catálogo.
type ProductStatus int16

const (
	ProductStatusActive   ProductStatus = 0
	ProductStatusInactive ProductStatus = 1
)

func (s ProductStatus) InRange() bool { return codeInRange(int16(s)) }

// SaleStatus estado de una venta.
type SaleStatus int16

const (
	SaleStatusPending   SaleStatus = 0
	SaleStatusPaid      SaleStatus = 1
	SaleStatusCancelled SaleStatus = 2
)

func (s SaleStatus) InRange() bool { return codeInRange(int16(s)) }

// PaymentMethod medio de pago de un abono.
type PaymentMethod int16

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodTransfer PaymentMethod = 2
)

func (m PaymentMethod) InRange() bool { return codeInRange(int16(m)) }

// MovementType tipo de movimiento de inventario. La cantidad del movimiento
// es siempre positiva; el tipo determina la dirección sobre el stock.
type MovementType int16

const (
	MovementTypeEntry         MovementType = 0 // entrada por compra
	MovementTypeExit          MovementType = 1 // salida por venta
	MovementTypeAdjustmentIn  MovementType = 2 // ajuste positivo
	MovementTypeAdjustmentOut MovementType = 3 // ajuste negativo
)

func (t MovementType) InRange() bool { return codeInRange(int16(t)) }

// AddsStock indica si el movimiento incrementa el stock del producto.
func (t MovementType) AddsStock() bool {
	return t == MovementTypeEntry || t == MovementTypeAdjustmentIn
}

// RemovesStock indica si el movimiento decrementa el stock del producto.
func (t MovementType) RemovesStock() bool {
	return t == MovementTypeExit || t == MovementTypeAdjustmentOut
}

// ReferenceType tipo de entidad referida por un movimiento de inventario.
type ReferenceType int16

const (
	ReferenceTypeSale       ReferenceType = 0
	ReferenceTypePurchase   ReferenceType = 1
	ReferenceTypeAdjustment ReferenceType = 2
)

func (t ReferenceType) InRange() bool { return codeInRange(int16(t)) }
