package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// CreateItem persiste una línea. La clave compuesta (sale_id, product_id)
	// rechaza un producto repetido en la misma venta.
	CreateItem(item *entity.SaleItem) error
	GetByID(id int64) (*entity.Sale, error)
	// GetForUpdate obtiene la venta bloqueando la fila (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetForUpdate(id int64) (*entity.Sale, error)
	GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error)
	// UpdatePaidTotal avanza el acumulado pagado de la venta. El check
	// paid_total <= total de la base de datos es la última línea de defensa.
	UpdatePaidTotal(id int64, paidTotal decimal.Decimal) error
	List(limit, offset int) ([]*entity.Sale, error)
}
