package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestRecordMaterial_NumeracionMensualConsecutiva(t *testing.T) {
	st := memory.NewStore()
	oct := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	ledger := inventory.NewMovementLedger().WithClock(fixedClock(oct))
	ctx := context.Background()

	var numbers []string
	require.NoError(t, st.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
		for i := 0; i < 3; i++ {
			m, err := ledger.RecordMaterial(ctx, r, inventory.MaterialMovementInput{
				Direction:      entity.DirectionOut,
				RawMaterialID:  harina,
				LotID:          "L1",
				Quantity:       d(1),
				QuantityBefore: d(int64(10 - i)),
				QuantityAfter:  d(int64(9 - i)),
				OriginType:     entity.OriginProduction,
				OriginID:       "P1",
			})
			if err != nil {
				return err
			}
			numbers = append(numbers, m.Number)
		}
		return nil
	}))
	assert.Equal(t, []string{"MOV-202610-00001", "MOV-202610-00002", "MOV-202610-00003"}, numbers)

	// Cambio de mes: la secuencia reinicia.
	nov := inventory.NewMovementLedger().WithClock(fixedClock(oct.AddDate(0, 1, 0)))
	require.NoError(t, st.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
		m, err := nov.RecordProduct(ctx, r, inventory.ProductMovementInput{
			Direction:      entity.DirectionIn,
			ProductID:      "pan",
			Quantity:       d(5),
			QuantityBefore: d(0),
			QuantityAfter:  d(5),
			OriginType:     entity.OriginProduction,
			OriginID:       "P1",
		})
		if err != nil {
			return err
		}
		assert.Equal(t, "MPT-202611-00001", m.Number)
		return nil
	}))
}

func TestRecordMaterial_RechazaSnapshotsInconsistentes(t *testing.T) {
	st := memory.NewStore()
	ledger := inventory.NewMovementLedger()
	ctx := context.Background()

	cases := map[string]inventory.MaterialMovementInput{
		"cantidad cero":       {Direction: entity.DirectionIn, Quantity: d(0), QuantityBefore: d(0), QuantityAfter: d(0)},
		"after no cuadra":     {Direction: entity.DirectionOut, Quantity: d(2), QuantityBefore: d(10), QuantityAfter: d(9)},
		"after negativo":      {Direction: entity.DirectionOut, Quantity: d(5), QuantityBefore: d(3), QuantityAfter: d(-2)},
		"dirección inválida":  {Direction: "AJUSTE", Quantity: d(1), QuantityBefore: d(0), QuantityAfter: d(1)},
		"entrada que resta":   {Direction: entity.DirectionIn, Quantity: d(1), QuantityBefore: d(5), QuantityAfter: d(4)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			in.RawMaterialID = harina
			in.OriginType = entity.OriginProduction
			in.OriginID = "P1"
			err := st.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
				_, err := ledger.RecordMaterial(ctx, r, in)
				return err
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, st.MaterialMovements())
}
