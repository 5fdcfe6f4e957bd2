package repository

import (
	"time"

	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para
// InventoryMovement. Libro mayor: solo inserción y consulta.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id int64) (*entity.InventoryMovement, error)
	ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	// ListByReference lista los movimientos que apuntan a una entidad
	// concreta (ej. todos los de una venta).
	ListByReference(refType entity.ReferenceType, refID int64) ([]*entity.InventoryMovement, error)
}
