package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El runner simula la transacción guardando una copia del
// estado y restaurándola si fn falla, para poder verificar el todo-o-nada.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	nextID    int64
	products  map[int64]*entity.Product
	sales     map[int64]*entity.Sale
	items     []*entity.SaleItem
	payments  []*entity.Payment
	movements []*entity.InventoryMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[int64]*entity.Product),
		sales:    make(map[int64]*entity.Sale),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addProduct(code string, price, cost string, stock int64) *entity.Product {
	p := &entity.Product{
		ID:            s.id(),
		Code:          code,
		Name:          code,
		Status:        entity.ProductStatusActive,
		PurchasePrice: decimal.RequireFromString(cost),
		SalePrice:     decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	s.products[p.ID] = p
	return p
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextID = s.nextID
	for id, p := range s.products {
		v := *p
		cp.products[id] = &v
	}
	for id, sale := range s.sales {
		v := *sale
		cp.sales[id] = &v
	}
	cp.items = append(cp.items, s.items...)
	cp.payments = append(cp.payments, s.payments...)
	cp.movements = append(cp.movements, s.movements...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.nextID = from.nextID
	s.products = from.products
	s.sales = from.sales
	s.items = from.items
	s.payments = from.payments
	s.movements = from.movements
}

// fakeTxRunner implementa sales.TxRunner con rollback simulado.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	before := r.store.snapshot()
	err := fn(
		&fakeSaleRepo{store: r.store},
		&fakePaymentRepo{store: r.store},
		&fakeMovementRepo{store: r.store},
		&fakeTxProductRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(before)
	}
	return err
}

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.store.id()
	cp := *sale
	r.store.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	for _, existing := range r.store.items {
		if existing.SaleID == item.SaleID && existing.ProductID == item.ProductID {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	r.store.items = append(r.store.items, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	sale, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) GetForUpdate(id int64) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, item := range r.store.items {
		if item.SaleID == saleID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdatePaidTotal(id int64, paidTotal decimal.Decimal) error {
	sale, ok := r.store.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	if paidTotal.GreaterThan(sale.Total) {
		return domain.ErrPaymentExceedsDue
	}
	sale.PaidTotal = paidTotal
	return nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.store.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

type fakePaymentRepo struct{ store *fakeStore }

func (r *fakePaymentRepo) Create(payment *entity.Payment) error {
	if !payment.Amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	payment.ID = r.store.id()
	cp := *payment
	r.store.payments = append(r.store.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	for _, p := range r.store.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) ListBySale(saleID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if p.SaleID == saleID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	if m.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	m.ID = r.store.id()
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id int64) (*entity.InventoryMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByReference(refType entity.ReferenceType, refID int64) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.Reference.Type == refType && m.Reference.ID != nil && *m.Reference.ID == refID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxProductRepo struct{ store *fakeStore }

func (r *fakeTxProductRepo) Create(product *entity.Product) error {
	product.ID = r.store.id()
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeTxProductRepo) GetByID(id int64) (*entity.Product, error) {
	product, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *fakeTxProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTxProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeTxProductRepo) Update(product *entity.Product) error {
	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeTxProductRepo) UpdateStock(id int64, quantity int64) error {
	product, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		return domain.ErrInsufficientStock
	}
	product.StockQuantity = quantity
	return nil
}

func (r *fakeTxProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
