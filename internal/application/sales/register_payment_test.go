package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/application/sales"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
)

// venta de 1.000.000 lista para recibir abonos.
func saleFixture(t *testing.T, store *fakeStore) *entity.Sale {
	t.Helper()
	sale := &entity.Sale{
		CreatedBy: 1,
		Total:     decimal.RequireFromString("1000000"),
		PaidTotal: decimal.Zero,
		Status:    entity.SaleStatusPending,
	}
	require.NoError(t, (&fakeSaleRepo{store: store}).Create(sale))
	return sale
}

func TestRegisterPayment_AvanzaAcumulado(t *testing.T) {
	store := newFakeStore()
	sale := saleFixture(t, store)
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: store})

	resp, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
		SaleID:    sale.ID,
		CreatedBy: 1,
		Amount:    decimal.RequireFromString("400000"),
		Method:    int16(entity.PaymentMethodTransfer),
	})
	require.NoError(t, err)
	assert.True(t, resp.SalePaidTotal.Equal(decimal.RequireFromString("400000")))
	assert.True(t, store.sales[sale.ID].PaidTotal.Equal(decimal.RequireFromString("400000")),
		"el acumulado de la venta avanza con el abono")
}

func TestRegisterPayment_VariosAbonosHastaElTotal(t *testing.T) {
	store := newFakeStore()
	sale := saleFixture(t, store)
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: store})

	for _, amount := range []string{"400000", "400000", "200000"} {
		_, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
			SaleID:    sale.ID,
			CreatedBy: 1,
			Amount:    decimal.RequireFromString(amount),
			Method:    int16(entity.PaymentMethodCash),
		})
		require.NoError(t, err)
	}
	assert.True(t, store.sales[sale.ID].PaidTotal.Equal(store.sales[sale.ID].Total),
		"la suma de abonos puede llegar exactamente al total")
	assert.Len(t, store.payments, 3)
}

func TestRegisterPayment_SuperaElSaldo(t *testing.T) {
	store := newFakeStore()
	sale := saleFixture(t, store)
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
		SaleID:    sale.ID,
		CreatedBy: 1,
		Amount:    decimal.RequireFromString("700000"),
		Method:    int16(entity.PaymentMethodCash),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), dto.RegisterPaymentRequest{
		SaleID:    sale.ID,
		CreatedBy: 1,
		Amount:    decimal.RequireFromString("700000"),
		Method:    int16(entity.PaymentMethodCash),
	})
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsDue)
	assert.True(t, store.sales[sale.ID].PaidTotal.Equal(decimal.RequireFromString("700000")),
		"el abono rechazado no toca el acumulado")
	assert.Len(t, store.payments, 1, "el abono rechazado no se persiste")
}

func TestRegisterPayment_MontoNoPositivo(t *testing.T) {
	store := newFakeStore()
	sale := saleFixture(t, store)
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: store})

	for _, amount := range []string{"0", "-100"} {
		_, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
			SaleID:    sale.ID,
			CreatedBy: 1,
			Amount:    decimal.RequireFromString(amount),
			Method:    int16(entity.PaymentMethodCash),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "no existen abonos de cero o negativos")
	}
}

func TestRegisterPayment_VentaInexistente(t *testing.T) {
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: newFakeStore()})

	_, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
		SaleID:    404,
		CreatedBy: 1,
		Amount:    decimal.RequireFromString("100"),
		Method:    int16(entity.PaymentMethodCash),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPayments_AcumuladoPorAbono(t *testing.T) {
	store := newFakeStore()
	sale := saleFixture(t, store)
	uc := sales.NewRegisterPaymentUseCase(&fakeTxRunner{store: store})

	for _, amount := range []string{"300000", "200000"} {
		_, err := uc.Execute(context.Background(), dto.RegisterPaymentRequest{
			SaleID:    sale.ID,
			CreatedBy: 1,
			Amount:    decimal.RequireFromString(amount),
			Method:    int16(entity.PaymentMethodCard),
		})
		require.NoError(t, err)
	}

	listUC := sales.NewListPaymentsUseCase(&fakePaymentRepo{store: store})
	payments, err := listUC.ListBySale(sale.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].SalePaidTotal.Equal(decimal.RequireFromString("300000")))
	assert.True(t, payments[1].SalePaidTotal.Equal(decimal.RequireFromString("500000")))
}
