package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, product_type, size, color, brand, location,
		width, height, depth, status, purchase_price, sale_price, stock_quantity, created_at, updated_at`

// Create persiste un producto nuevo. Stock inicia en 0 salvo indicación
// contraria; los checks de la tabla rechazan precios negativos, dimensiones
// no positivas y códigos fuera de rango.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, product_type, size, color, brand, location,
			width, height, depth, status, purchase_price, sale_price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Code, product.Name, product.ProductType, product.Size, product.Color,
		product.Brand, product.Location, product.Width, product.Height, product.Depth,
		product.Status, product.PurchasePrice, product.SalePrice, product.StockQuantity,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCode obtiene un producto por código (único).
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, code), "get product by code")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE) para
// serializar los cambios de stock concurrentes. Usar dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza los datos de catálogo del producto. No toca el stock: ese
// cambia solo vía UpdateStock dentro de un movimiento.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET code = $2, name = $3, product_type = $4, size = $5, color = $6, brand = $7,
			location = $8, width = $9, height = $10, depth = $11, status = $12,
			purchase_price = $13, sale_price = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.ProductType, product.Size,
		product.Color, product.Brand, product.Location, product.Width, product.Height,
		product.Depth, product.Status, product.PurchasePrice, product.SalePrice, product.UpdatedAt,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del producto. El check stock_quantity >= 0
// rechaza cualquier valor negativo que se escape de la validación de la app.
func (r *ProductRepo) UpdateStock(id int64, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows, "scan product")
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanProduct.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row pgxScanner, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.ProductType, &p.Size, &p.Color, &p.Brand, &p.Location,
		&p.Width, &p.Height, &p.Depth, &p.Status, &p.PurchasePrice, &p.SalePrice,
		&p.StockQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
