package repository

import "github.com/Andres06271/inventory-system-backend/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// El stock no se edita con Update: solo con UpdateStock dentro de una
// transacción que registre el movimiento correspondiente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto. La guarda stock_quantity >= 0
	// de la base de datos rechaza cualquier valor negativo.
	UpdateStock(id int64, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
