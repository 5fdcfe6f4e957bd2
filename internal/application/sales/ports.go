// Package sales implementa el motor transaccional de ventas: creación de la
// venta con sus líneas, descuento de stock con fila bloqueada, movimientos de
// salida y abonos. Todo dentro de una sola transacción.
package sales

import (
	"context"

	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, entregando repositorios
// atados a la misma tx. Si fn devuelve error la transacción se revierte.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
