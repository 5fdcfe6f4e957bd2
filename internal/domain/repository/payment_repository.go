package repository

import "github.com/Andres06271/inventory-system-backend/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los abonos son inmutables: solo inserción y consulta.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id int64) (*entity.Payment, error)
	ListBySale(saleID int64) ([]*entity.Payment, error)
}
