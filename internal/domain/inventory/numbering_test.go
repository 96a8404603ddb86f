package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panaderia-api/internal/domain/inventory"
)

func TestMovementNumber_Formato(t *testing.T) {
	period := inventory.Period(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "202603", period)
	assert.Equal(t, "MOV-202603-00001", inventory.MovementNumber(inventory.PrefixMaterialMovement, period, 1))
	assert.Equal(t, "MPT-202603-00123", inventory.MovementNumber(inventory.PrefixProductMovement, period, 123))
	assert.Equal(t, "PROD-202603-7", inventory.DocumentNumber(inventory.PrefixProduction, period, 7))
	assert.Equal(t, "VENTA-202603-42", inventory.DocumentNumber(inventory.PrefixSale, period, 42))
}

func TestSuggestedDiscountPct_Tramos(t *testing.T) {
	cases := map[int]int64{0: 0, 1: 30, 2: 50, 3: 70, 10: 70}
	for age, want := range cases {
		assert.True(t, inventory.SuggestedDiscountPct(age).Equal(decimal.NewFromInt(want)), "edad %d", age)
	}
}

func TestAgeInDays_DiasCalendario(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, inventory.AgeInDays(time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 1, inventory.AgeInDays(time.Date(2026, 10, 13, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 3, inventory.AgeInDays(time.Date(2026, 10, 11, 6, 0, 0, 0, time.UTC), now))
}

func TestLineSubtotal(t *testing.T) {
	got := inventory.LineSubtotal(decimal.NewFromInt(1000), decimal.NewFromInt(30), decimal.NewFromInt(3))
	assert.True(t, got.Equal(decimal.NewFromInt(2100)), got.String())
}

func TestCostCalculator_PromedioPonderado(t *testing.T) {
	// 10 u a 100 + 10 u a 200 = 150
	got := inventory.CostCalculator(decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(10), decimal.NewFromInt(200))
	assert.True(t, got.Equal(decimal.NewFromInt(150)), got.String())

	// Sin stock previo el costo es el del batch.
	got = inventory.CostCalculator(decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(5), decimal.NewFromInt(80))
	assert.True(t, got.Equal(decimal.NewFromInt(80)))

	assert.True(t, inventory.UnitCostOf(decimal.NewFromInt(100), decimal.Zero).IsZero())
}
