package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
)

var t0 = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

func at(days int) *time.Time {
	v := t0.AddDate(0, 0, days)
	return &v
}

type inventoryFixture struct {
	st *memory.Store
}

func seedLots(t *testing.T) *inventoryFixture {
	t.Helper()
	st := newStore()
	st.AddReceipt(entity.GoodsReceipt{ID: "R1", State: entity.ReceiptCompleted})
	st.AddReceipt(entity.GoodsReceipt{ID: "R2", State: entity.ReceiptVoided})
	st.AddLot(entity.Lot{ID: "L-B", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(30), QuantityRemaining: d(30), ExpirationDate: at(90), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "L-A", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(50), QuantityRemaining: d(50), ExpirationDate: at(10), CreatedAt: t0.Add(time.Hour)})
	st.AddLot(entity.Lot{ID: "L-N", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(5), QuantityRemaining: d(5), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "L-0", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(8), QuantityRemaining: d(0), ExpirationDate: at(1), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "L-V", ReceiptID: "R2", RawMaterialID: harina, QuantityReceived: d(99), QuantityRemaining: d(99), ExpirationDate: at(2), CreatedAt: t0})
	return &inventoryFixture{st: st}
}

func TestSelectLots_OrdenFEFOYElegibilidad(t *testing.T) {
	fx := seedLots(t)
	cands, err := inventory.SelectLots(context.Background(), fx.st.Repos(), harina, d(1))
	require.NoError(t, err)

	ids := make([]string, 0, len(cands))
	for _, c := range cands {
		ids = append(ids, c.Lot.ID)
	}
	// Agotados y de ingresos anulados quedan fuera; sin vencimiento al final.
	assert.Equal(t, []string{"L-A", "L-B", "L-N"}, ids)
	assert.True(t, cands[0].Available.Equal(d(50)))
}

// Las líneas de un ingreso comparten vencimiento y fecha de creación: se consume
// primero la línea registrada primero, sin depender de los ids generados.
func TestSelectLots_LineasDelMismoIngresoEnOrdenDeRegistro(t *testing.T) {
	exp := t0.AddDate(0, 0, 20)
	req := dto.CreateReceiptRequest{
		State:  "COMPLETADO",
		UserID: user,
		Lines: []dto.ReceiptLineRequest{
			{RawMaterialID: harina, Quantity: d(5), ExpirationDate: &exp, UnitCost: d(2)},
			{RawMaterialID: harina, Quantity: d(7), ExpirationDate: &exp, UnitCost: d(2)},
		},
	}
	for i := 0; i < 30; i++ {
		st := newStore()
		out, err := newReceiptUC(st).CreateReceipt(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, out.Lots, 2)

		cands, err := inventory.SelectLots(context.Background(), st.Repos(), harina, d(3))
		require.NoError(t, err)
		require.Len(t, cands, 2)
		require.Equal(t, out.Lots[0].ID, cands[0].Lot.ID, "corrida %d", i)
		assert.True(t, cands[0].Available.Equal(d(5)))
	}
}

func TestSelectLots_SinLotesEsListaVacia(t *testing.T) {
	st := newStore()
	cands, err := inventory.SelectLots(context.Background(), st.Repos(), azucar, d(3))
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestSelectLots_CantidadInvalida(t *testing.T) {
	st := newStore()
	_, err := inventory.SelectLots(context.Background(), st.Repos(), harina, d(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLockLots_AgrupaPorInsumoEnOrdenFEFO(t *testing.T) {
	fx := seedLots(t)
	err := fx.st.Run(context.Background(), func(ctx context.Context, r inventory.Repos) error {
		locked, err := inventory.LockLots(ctx, r, []string{harina, azucar})
		require.NoError(t, err)
		require.Len(t, locked[harina], 3)
		assert.Equal(t, "L-A", locked[harina][0].ID)
		assert.Equal(t, "L-N", locked[harina][2].ID)
		assert.Empty(t, locked[azucar])
		return nil
	})
	require.NoError(t, err)
}

func TestKardex_PreviewYConciliacion(t *testing.T) {
	st := newStore()
	uc := newReceiptUC(st)
	ctx := context.Background()
	_, err := uc.CreateReceipt(ctx, receiptReq("COMPLETADO"))
	require.NoError(t, err)

	kardex := inventory.NewKardexUseCase(st.Repos(), inventory.NewLotRegistry(inventory.NewMovementLedger()))

	preview, err := kardex.PreviewLots(ctx, harina)
	require.NoError(t, err)
	assert.True(t, preview.Available.Equal(d(50)))
	require.Len(t, preview.Lots, 1)

	balance, err := kardex.VerifyMaterialBalance(ctx, harina)
	require.NoError(t, err)
	assert.True(t, balance.Consistent)
	assert.True(t, balance.LedgerTotal.Equal(d(50)))

	list, err := kardex.ListMaterialKardex(ctx, harina, dto.KardexFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, string(entity.DirectionIn), list.Items[0].Direction)
	assert.Equal(t, 20, list.Page.Limit)

	_, err = kardex.PreviewLots(ctx, "desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKardex_DetectaDescuadre(t *testing.T) {
	fx := seedLots(t)
	kardex := inventory.NewKardexUseCase(fx.st.Repos(), inventory.NewLotRegistry(inventory.NewMovementLedger()))
	// Lotes sembrados sin ENTRADA en el kardex.
	balance, err := kardex.VerifyMaterialBalance(context.Background(), harina)
	require.NoError(t, err)
	assert.False(t, balance.Consistent)
	assert.True(t, balance.Difference.Equal(d(85)))
}
