package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

const (
	pan     = "prod-pan"
	torta   = "prod-torta"
	galleta = "prod-galleta"
	user    = "user-1"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type fakePDF struct {
	sale  *dto.SaleResponse
	names map[string]string
}

func (f *fakePDF) GenerateSaleReceipt(_ context.Context, sale *dto.SaleResponse, names map[string]string) ([]byte, error) {
	f.sale, f.names = sale, names
	return []byte("%PDF-1.4"), nil
}

func fixture(t *testing.T) (*memory.Store, *sales.Engine, *fakePDF) {
	t.Helper()
	st := memory.NewStore()
	st.AddGood(entity.FinishedGood{ID: pan, Name: "Pan francés", Price: d(500), StockActual: d(100)})
	st.AddGood(entity.FinishedGood{ID: torta, Name: "Torta de chocolate", Price: d(25000), StockActual: d(2)})
	st.AddGood(entity.FinishedGood{ID: galleta, Name: "Galleta", Price: d(1000), StockActual: d(0)})
	pdf := &fakePDF{}
	return st, sales.NewEngine(st.Repos(), st, inventory.NewMovementLedger(), pdf, logger.Nop()), pdf
}

func saleReq(items ...dto.SaleItemRequest) dto.RegisterSaleRequest {
	return dto.RegisterSaleRequest{Items: items, PaymentMethod: entity.PaymentCash, UserID: user}
}

func TestRegisterSale_DescuentaStockYRegistraKardex(t *testing.T) {
	st, engine, _ := fixture(t)
	out, err := engine.RegisterSale(context.Background(), saleReq(
		dto.SaleItemRequest{ProductID: pan, Quantity: d(10)},
		dto.SaleItemRequest{ProductID: torta, Quantity: d(1), UnitPrice: d(20000), DiscountPct: d(30)},
	))
	require.NoError(t, err)

	assert.Regexp(t, `^VENTA-\d{6}-1$`, out.Number)
	assert.Equal(t, string(entity.SaleActive), out.Status)
	// 10×500 + 20000×0.7 = 19000
	assert.True(t, out.Total.Equal(d(19000)), out.Total.String())
	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[0].UnitPrice.Equal(d(500)), "precio de catálogo por defecto")

	assert.True(t, st.Good(pan).StockActual.Equal(d(90)))
	assert.True(t, st.Good(torta).StockActual.Equal(d(1)))

	movs := st.ProductMovements()
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.DirectionOut, m.Direction)
		assert.Equal(t, entity.OriginSale, m.OriginType)
		assert.Equal(t, out.ID, m.OriginID)
	}
	assert.True(t, movs[0].QuantityBefore.Equal(d(100)))
	assert.True(t, movs[0].QuantityAfter.Equal(d(90)))
}

func TestRegisterSale_StockInsuficienteNombraProducto(t *testing.T) {
	st, engine, _ := fixture(t)
	// La cantidad se agrega por producto: 1 + 2 > 2.
	_, err := engine.RegisterSale(context.Background(), saleReq(
		dto.SaleItemRequest{ProductID: torta, Quantity: d(1)},
		dto.SaleItemRequest{ProductID: torta, Quantity: d(2)},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	require.Len(t, insuf.Items, 1)
	assert.Equal(t, "Torta de chocolate", insuf.Items[0].Name)
	assert.True(t, insuf.Items[0].Required.Equal(d(3)))

	assert.Equal(t, 0, st.SaleCount())
	assert.Empty(t, st.ProductMovements())
	assert.True(t, st.Good(torta).StockActual.Equal(d(2)))
}

func TestRegisterSale_Validaciones(t *testing.T) {
	_, engine, _ := fixture(t)
	ctx := context.Background()

	_, err := engine.RegisterSale(ctx, saleReq())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: d(0)}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: d(1), DiscountPct: d(120)}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: decimal.RequireFromString("1.00005")}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad con más de 4 decimales")

	_, err = engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: "no-existe", Quantity: d(1)}))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req := saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: d(1)})
	req.PaymentMethod = "CHEQUE"
	_, err = engine.RegisterSale(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSale_FallaEnSegundaLineaRevierte(t *testing.T) {
	st, engine, _ := fixture(t)
	st.FailOn("goods.UpdateStock", 2, errors.New("timeout"))

	_, err := engine.RegisterSale(context.Background(), saleReq(
		dto.SaleItemRequest{ProductID: pan, Quantity: d(5)},
		dto.SaleItemRequest{ProductID: torta, Quantity: d(1)},
	))
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	assert.Equal(t, 0, st.SaleCount())
	assert.Empty(t, st.ProductMovements())
	assert.True(t, st.Good(pan).StockActual.Equal(d(100)))
}

func TestCancelSale_RestauraStockYNoSeRepite(t *testing.T) {
	st, engine, _ := fixture(t)
	ctx := context.Background()
	sale, err := engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: d(10)}))
	require.NoError(t, err)

	voided, err := engine.CancelSale(ctx, sale.ID, user)
	require.NoError(t, err)
	assert.Equal(t, string(entity.SaleVoided), voided.Status)
	assert.NotNil(t, voided.VoidedAt)
	assert.True(t, st.Good(pan).StockActual.Equal(d(100)))

	movs := st.ProductMovements()
	require.Len(t, movs, 2)
	assert.Equal(t, entity.DirectionIn, movs[1].Direction)
	assert.Equal(t, sales.ReasonSaleVoided, movs[1].Reason)

	_, err = engine.CancelSale(ctx, sale.ID, user)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoided)
	assert.True(t, st.Good(pan).StockActual.Equal(d(100)), "la segunda anulación no devuelve stock")

	_, err = engine.CancelSale(ctx, "no-existe", user)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuggestDiscounts_TramosPorAntiguedad(t *testing.T) {
	st, engine, _ := fixture(t)
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	st.AddGood(entity.FinishedGood{ID: "prod-hoy", Name: "Croissant", Price: d(3000), StockActual: d(4)})
	st.AddProduction(entity.ProductionRun{ID: "p1", ProductID: pan, CreatedAt: now.AddDate(0, 0, -1)})
	st.AddProduction(entity.ProductionRun{ID: "p2", ProductID: torta, CreatedAt: now.AddDate(0, 0, -5)})
	st.AddProduction(entity.ProductionRun{ID: "p3", ProductID: torta, CreatedAt: now.AddDate(0, 0, -2)})
	st.AddProduction(entity.ProductionRun{ID: "p4", ProductID: "prod-hoy", CreatedAt: now.Add(-2 * time.Hour)})
	st.AddProduction(entity.ProductionRun{ID: "p5", ProductID: galleta, CreatedAt: now.AddDate(0, 0, -9)})

	out, err := engine.SuggestDiscounts(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, out, 2, "sin stock, del día o sin producción no se listan")

	// La torta usa su producción más reciente (2 días).
	assert.Equal(t, torta, out[0].ProductID)
	assert.Equal(t, 2, out[0].AgeDays)
	assert.True(t, out[0].DiscountPct.Equal(d(50)))
	assert.True(t, out[0].SuggestedPrice.Equal(d(12500)))

	assert.Equal(t, pan, out[1].ProductID)
	assert.True(t, out[1].DiscountPct.Equal(d(30)))
	assert.True(t, out[1].SuggestedPrice.Equal(d(350)))
	// Informativo: el precio no cambia.
	assert.True(t, st.Good(pan).Price.Equal(d(500)))
}

func TestReceiptPDF_UsaNombresDeProducto(t *testing.T) {
	_, engine, pdf := fixture(t)
	ctx := context.Background()
	sale, err := engine.RegisterSale(ctx, saleReq(dto.SaleItemRequest{ProductID: pan, Quantity: d(2)}))
	require.NoError(t, err)

	doc, name, err := engine.ReceiptPDF(ctx, sale.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Equal(t, sale.Number+".pdf", name)
	assert.Equal(t, "Pan francés", pdf.names[pan])

	_, _, err = engine.ReceiptPDF(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
