package inventory

import (
	"context"
	"time"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento manual (entrada por compra,
// ajuste positivo o negativo) y actualiza el stock del producto en la misma
// transacción, con la fila bloqueada.
type RegisterMovementUseCase struct {
	tx TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(tx TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx}
}

// Execute registra el movimiento. Reglas: cantidad estrictamente positiva; un
// movimiento que descuenta stock no puede dejarlo negativo. Las salidas por
// venta no pasan por aquí: las genera el motor de ventas.
func (uc *RegisterMovementUseCase) Execute(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	movType := entity.MovementType(in.Type)
	refType := entity.ReferenceType(in.ReferenceType)
	if !movType.InRange() || !refType.InRange() {
		return nil, domain.ErrCodeOutOfRange
	}
	if !movType.AddsStock() && !movType.RemovesStock() {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.MovementResponse
	err := uc.tx.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrInvalidReference
		}

		newStock := product.StockQuantity
		if movType.AddsStock() {
			newStock += in.Quantity
		} else {
			newStock -= in.Quantity
			if newStock < 0 {
				return domain.ErrInsufficientStock
			}
		}

		movement := &entity.InventoryMovement{
			ProductID: in.ProductID,
			CreatedBy: in.CreatedBy,
			Type:      movType,
			Quantity:  in.Quantity,
			Reference: entity.Reference{Type: refType, ID: in.ReferenceID},
			Notes:     in.Notes,
			CreatedAt: time.Now(),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(in.ProductID, newStock); err != nil {
			return err
		}
		resp = toMovementResponse(movement, newStock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// QueryMovementsUseCase consultas de solo lectura sobre el libro mayor.
type QueryMovementsUseCase struct {
	movements repository.InventoryMovementRepository
}

// NewQueryMovementsUseCase construye el caso de uso.
func NewQueryMovementsUseCase(movements repository.InventoryMovementRepository) *QueryMovementsUseCase {
	return &QueryMovementsUseCase{movements: movements}
}

// ListByProduct lista los movimientos de un producto en un rango de fechas,
// paginados. from y to son opcionales.
func (uc *QueryMovementsUseCase) ListByProduct(productID int64, from, to *time.Time, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.movements.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m, 0))
	}
	return out, nil
}

// ListBySale lista los movimientos de salida generados por una venta.
func (uc *QueryMovementsUseCase) ListBySale(saleID int64) ([]dto.MovementResponse, error) {
	movements, err := uc.movements.ListByReference(entity.ReferenceTypeSale, saleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m, 0))
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement, stockAfter int64) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		CreatedBy:     m.CreatedBy,
		Type:          int16(m.Type),
		Quantity:      m.Quantity,
		ReferenceType: int16(m.Reference.Type),
		ReferenceID:   m.Reference.ID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		StockAfter:    stockAfter,
	}
}
