package repository

import "github.com/Andres06271/inventory-system-backend/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
