package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, created_by, total, paid_total, status, created_at`

// Create persiste la cabecera de una venta. Los checks de la tabla rechazan
// total negativo, paid_total negativo o mayor que total y status fuera de rango.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_id, created_by, total, paid_total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.CustomerID, sale.CreatedBy, sale.Total, sale.PaidTotal, sale.Status, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta. La PK compuesta (sale_id,
// product_id) hace fallar el segundo insert del mismo producto en la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.UnitCost,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return scanSale(r.q.QueryRow(context.Background(), query, id), "get sale")
}

// GetForUpdate obtiene la venta y bloquea la fila (SELECT FOR UPDATE) para
// serializar abonos concurrentes. Usar dentro de una transacción.
func (r *SaleRepo) GetForUpdate(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	return scanSale(r.q.QueryRow(context.Background(), query, id), "get sale for update")
}

// GetItemsBySaleID lista las líneas de una venta.
func (r *SaleRepo) GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error) {
	query := `
		SELECT sale_id, product_id, quantity, unit_price, unit_cost
		FROM sale_items WHERE sale_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdatePaidTotal avanza el acumulado pagado de la venta. El check
// paid_total <= total rechaza el exceso en el mismo UPDATE.
func (r *SaleRepo) UpdatePaidTotal(id int64, paidTotal decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET paid_total = $2 WHERE id = $1`, id, paidTotal)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrPaymentExceedsDue
		}
		return fmt.Errorf("update sale paid_total: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ventas con paginación, más reciente primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows, "scan sale")
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgxScanner, op string) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CustomerID, &s.CreatedBy, &s.Total, &s.PaidTotal, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
