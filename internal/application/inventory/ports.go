// Package inventory implementa el motor de movimientos de inventario: el
// libro mayor de entradas, salidas y ajustes que es la única vía de
// modificación del stock.
package inventory

import (
	"context"

	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, entregando repositorios
// atados a la misma tx. Si fn devuelve error la transacción se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
