package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// CreateSaleUseCase crea una venta completa: cabecera, líneas, descuento de
// stock, movimientos de salida y abono inicial opcional. Todo o nada.
type CreateSaleUseCase struct {
	tx TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(tx TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{tx: tx}
}

// Execute registra la venta. Reglas:
//   - ningún producto se repite entre las líneas;
//   - cada línea captura precio y costo al momento de la venta
//     (UnitPrice nil toma el precio vigente del producto);
//   - el stock se descuenta con la fila del producto bloqueada
//     (SELECT FOR UPDATE) y nunca queda negativo;
//   - por cada línea se registra un movimiento de salida referenciando la venta;
//   - el abono inicial, si viene, no puede superar el total.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.SaleStatus(in.Status).InRange() {
		return nil, domain.ErrCodeOutOfRange
	}
	seen := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if seen[it.ProductID] {
			return nil, domain.ErrDuplicate
		}
		seen[it.ProductID] = true
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.InitialPayment != nil {
		if !entity.PaymentMethod(in.InitialPayment.Method).InRange() {
			return nil, domain.ErrCodeOutOfRange
		}
		if !in.InitialPayment.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	var resp *dto.SaleResponse
	err := uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()

		// Primera pasada: bloquear productos y armar las líneas con sus
		// capturas de precio y costo.
		items := make([]*entity.SaleItem, 0, len(in.Items))
		products := make([]*entity.Product, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrInvalidReference
			}
			if product.StockQuantity < it.Quantity {
				return domain.ErrInsufficientStock
			}
			price := product.SalePrice
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			item := &entity.SaleItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: price,
				UnitCost:  product.PurchasePrice,
			}
			items = append(items, item)
			products = append(products, product)
			total = total.Add(item.Subtotal())
		}

		if in.InitialPayment != nil && in.InitialPayment.Amount.GreaterThan(total) {
			return domain.ErrPaymentExceedsDue
		}

		sale := &entity.Sale{
			CustomerID: in.CustomerID,
			CreatedBy:  in.CreatedBy,
			Total:      total,
			PaidTotal:  decimal.Zero,
			Status:     entity.SaleStatus(in.Status),
			CreatedAt:  now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Segunda pasada: persistir líneas, descontar stock y registrar la
		// salida de inventario de cada producto.
		for i, item := range items {
			item.SaleID = sale.ID
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			newStock := products[i].StockQuantity - item.Quantity
			if err := productRepo.UpdateStock(item.ProductID, newStock); err != nil {
				return err
			}
			movement := &entity.InventoryMovement{
				ProductID: item.ProductID,
				CreatedBy: in.CreatedBy,
				Type:      entity.MovementTypeExit,
				Quantity:  item.Quantity,
				Reference: entity.SaleReference(sale.ID),
				CreatedAt: now,
			}
			if err := movRepo.Create(movement); err != nil {
				return err
			}
		}

		if in.InitialPayment != nil {
			payment := &entity.Payment{
				SaleID:     sale.ID,
				CustomerID: in.CustomerID,
				CreatedBy:  in.CreatedBy,
				Amount:     in.InitialPayment.Amount,
				Method:     entity.PaymentMethod(in.InitialPayment.Method),
				Notes:      in.InitialPayment.Notes,
				CreatedAt:  now,
			}
			if err := paymentRepo.Create(payment); err != nil {
				return err
			}
			sale.PaidTotal = payment.Amount
			if err := saleRepo.UpdatePaidTotal(sale.ID, sale.PaidTotal); err != nil {
				return err
			}
		}

		resp = toSaleResponse(sale, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetSaleUseCase consulta de ventas con sus líneas (fuera de transacción).
type GetSaleUseCase struct {
	sales repository.SaleRepository
}

// NewGetSaleUseCase construye el caso de uso.
func NewGetSaleUseCase(sales repository.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{sales: sales}
}

// GetByID obtiene una venta con sus líneas.
func (uc *GetSaleUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.sales.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// List lista ventas paginadas, sin líneas.
func (uc *GetSaleUseCase) List(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.sales.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		CreatedBy:  s.CreatedBy,
		Total:      s.Total,
		PaidTotal:  s.PaidTotal,
		Status:     int16(s.Status),
		CreatedAt:  s.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal(),
		})
	}
	return out
}
