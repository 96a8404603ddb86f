package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
)

func lotIDs(lots []*entity.Lot) []string {
	out := make([]string, 0, len(lots))
	for _, l := range lots {
		out = append(out, l.ID)
	}
	return out
}

// Anular un ingreso y producir bloquean los mismos lotes en el mismo orden.
func TestLotRepo_BloqueoEnOrdenInsumoID(t *testing.T) {
	st := memory.NewStore()
	st.AddReceipt(entity.GoodsReceipt{ID: "R1", State: entity.ReceiptCompleted})
	qty := decimal.NewFromInt(5)
	for _, l := range []entity.Lot{
		{ID: "l-3", ReceiptID: "R1", RawMaterialID: "mat-b"},
		{ID: "l-9", ReceiptID: "R1", RawMaterialID: "mat-a"},
		{ID: "l-1", ReceiptID: "R1", RawMaterialID: "mat-b"},
		{ID: "l-5", ReceiptID: "R1", RawMaterialID: "mat-a"},
	} {
		l.QuantityReceived, l.QuantityRemaining = qty, qty
		st.AddLot(l)
	}

	lots := st.Repos().Lots
	ctx := context.Background()
	byReceipt, err := lots.ListByReceiptForUpdate(ctx, "R1")
	require.NoError(t, err)
	active, err := lots.ListActiveForUpdate(ctx, []string{"mat-b", "mat-a"})
	require.NoError(t, err)

	want := []string{"l-5", "l-9", "l-1", "l-3"}
	assert.Equal(t, want, lotIDs(byReceipt))
	assert.Equal(t, want, lotIDs(active))
}

func TestLotRepo_ListByReceiptEnOrdenDeInsercion(t *testing.T) {
	st := memory.NewStore()
	st.AddReceipt(entity.GoodsReceipt{ID: "R1", State: entity.ReceiptPending})
	for _, id := range []string{"z", "m", "a"} {
		st.AddLot(entity.Lot{ID: id, ReceiptID: "R1", RawMaterialID: "mat-a"})
	}

	got, err := st.Repos().Lots.ListByReceipt(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, lotIDs(got))
}
