package entity

import "time"

// Reference enlace polimórfico de un movimiento de inventario: apunta a una
// venta, una compra o un ajuste sin FK formal, porque el tipo de entidad
// referida varía. Unión etiquetada en lugar del par entero suelto del esquema.
type Reference struct {
	Type ReferenceType
	ID   *int64 // nil para referencias sin entidad (ej. ajuste manual)
}

// SaleReference referencia a la venta que originó el movimiento.
func SaleReference(saleID int64) Reference {
	return Reference{Type: ReferenceTypeSale, ID: &saleID}
}

// PurchaseReference referencia a la compra que originó el movimiento.
func PurchaseReference(purchaseID int64) Reference {
	return Reference{Type: ReferenceTypePurchase, ID: &purchaseID}
}

// AdjustmentReference referencia de ajuste manual, sin entidad asociada.
func AdjustmentReference() Reference {
	return Reference{Type: ReferenceTypeAdjustment}
}

// InventoryMovement representa un movimiento de inventario de un producto.
// Quantity es siempre positiva; la dirección la determina Type. Registro
// contable inmutable (libro mayor de inventario).
type InventoryMovement struct {
	ID        int64
	ProductID int64
	CreatedBy int64
	Type      MovementType
	Quantity  int64 // > 0
	Reference Reference
	Notes     *string
	CreatedAt time.Time
}
