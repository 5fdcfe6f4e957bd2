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

// RegisterPaymentUseCase registra un abono a una venta existente y avanza su
// acumulado pagado. La venta se bloquea durante la operación para que dos
// abonos concurrentes no superen el total.
type RegisterPaymentUseCase struct {
	tx TxRunner
}

// NewRegisterPaymentUseCase construye el caso de uso.
func NewRegisterPaymentUseCase(tx TxRunner) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{tx: tx}
}

// Execute registra el abono. Reglas: monto estrictamente positivo; el
// acumulado pagado nunca supera el total de la venta.
func (uc *RegisterPaymentUseCase) Execute(ctx context.Context, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.PaymentMethod(in.Method).InRange() {
		return nil, domain.ErrCodeOutOfRange
	}

	var resp *dto.PaymentResponse
	err := uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
		_ repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(in.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		newPaid := sale.PaidTotal.Add(in.Amount)
		if newPaid.GreaterThan(sale.Total) {
			return domain.ErrPaymentExceedsDue
		}
		payment := &entity.Payment{
			SaleID:     sale.ID,
			CustomerID: sale.CustomerID,
			CreatedBy:  in.CreatedBy,
			Amount:     in.Amount,
			Method:     entity.PaymentMethod(in.Method),
			Notes:      in.Notes,
			CreatedAt:  time.Now(),
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		if err := saleRepo.UpdatePaidTotal(sale.ID, newPaid); err != nil {
			return err
		}
		resp = &dto.PaymentResponse{
			ID:            payment.ID,
			SaleID:        payment.SaleID,
			CustomerID:    payment.CustomerID,
			CreatedBy:     payment.CreatedBy,
			Amount:        payment.Amount,
			Method:        int16(payment.Method),
			Notes:         payment.Notes,
			CreatedAt:     payment.CreatedAt,
			SalePaidTotal: newPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPaymentsUseCase consulta de abonos de una venta.
type ListPaymentsUseCase struct {
	payments repository.PaymentRepository
}

// NewListPaymentsUseCase construye el caso de uso.
func NewListPaymentsUseCase(payments repository.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{payments: payments}
}

// ListBySale lista los abonos de una venta en orden de registro.
func (uc *ListPaymentsUseCase) ListBySale(saleID int64) ([]dto.PaymentResponse, error) {
	payments, err := uc.payments.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	running := decimal.Zero
	for _, p := range payments {
		running = running.Add(p.Amount)
		out = append(out, dto.PaymentResponse{
			ID:            p.ID,
			SaleID:        p.SaleID,
			CustomerID:    p.CustomerID,
			CreatedBy:     p.CreatedBy,
			Amount:        p.Amount,
			Method:        int16(p.Method),
			Notes:         p.Notes,
			CreatedAt:     p.CreatedAt,
			SalePaidTotal: running,
		})
	}
	return out, nil
}
