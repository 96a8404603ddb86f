package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// Deduction cantidad a descontar de un lote concreto.
type Deduction struct {
	Lot      *entity.Lot
	Quantity decimal.Decimal
	Before   decimal.Decimal
	After    decimal.Decimal
}

// LessFEFO es el único comparador FEFO del sistema: vencimiento ascendente, lotes sin
// vencimiento al final, empates por orden de inserción (Seq). Los lotes de un mismo ingreso
// comparten created_at, así que la fecha de creación e ID solo desempatan lotes sin Seq.
func LessFEFO(a, b *entity.Lot) bool {
	switch {
	case a.ExpirationDate != nil && b.ExpirationDate == nil:
		return true
	case a.ExpirationDate == nil && b.ExpirationDate != nil:
		return false
	case a.ExpirationDate != nil && b.ExpirationDate != nil && !a.ExpirationDate.Equal(*b.ExpirationDate):
		return a.ExpirationDate.Before(*b.ExpirationDate)
	}
	if a.Seq > 0 && b.Seq > 0 && a.Seq != b.Seq {
		return a.Seq < b.Seq
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// SortFEFO ordena los lotes in-place según LessFEFO.
func SortFEFO(lots []*entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool { return LessFEFO(lots[i], lots[j]) })
}

// TotalRemaining suma QuantityRemaining de los lotes.
func TotalRemaining(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lots {
		total = total.Add(l.QuantityRemaining)
	}
	return total
}

// PlanDeduction recorre los lotes en el orden recibido tomando min(restante, pendiente)
// de cada uno hasta cubrir needed (redondeado a QuantityScale). Devuelve el plan y el
// faltante (cero si alcanza).
// No modifica los lotes.
func PlanDeduction(lots []*entity.Lot, needed decimal.Decimal) ([]Deduction, decimal.Decimal) {
	pending := RoundQuantity(needed)
	plan := make([]Deduction, 0, len(lots))
	for _, lot := range lots {
		if !pending.GreaterThan(decimal.Zero) {
			break
		}
		if !lot.HasStock() {
			continue
		}
		take := decimal.Min(lot.QuantityRemaining, pending)
		plan = append(plan, Deduction{
			Lot:      lot,
			Quantity: take,
			Before:   lot.QuantityRemaining,
			After:    lot.QuantityRemaining.Sub(take),
		})
		pending = pending.Sub(take)
	}
	if pending.LessThan(decimal.Zero) {
		pending = decimal.Zero
	}
	return plan, pending
}

// DeductionCost costo total del plan según el costo unitario de cada lote.
func DeductionCost(plan []Deduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range plan {
		total = total.Add(d.Quantity.Mul(d.Lot.UnitCost))
	}
	return total
}
