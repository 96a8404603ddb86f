package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// SuggestedDiscountPct tramo de descuento sugerido según días desde la última producción:
// 1 día 30%, 2 días 50%, 3 o más 70%. Producto del día: 0.
func SuggestedDiscountPct(ageDays int) decimal.Decimal {
	switch {
	case ageDays <= 0:
		return decimal.Zero
	case ageDays == 1:
		return decimal.NewFromInt(30)
	case ageDays == 2:
		return decimal.NewFromInt(50)
	default:
		return decimal.NewFromInt(70)
	}
}

// AgeInDays días calendario transcurridos entre produced y now (en la zona de now).
func AgeInDays(produced, now time.Time) int {
	p := produced.In(now.Location())
	py, pm, pd := p.Date()
	ny, nm, nd := now.Date()
	start := time.Date(py, pm, pd, 0, 0, 0, 0, now.Location())
	end := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	days := int((end.Sub(start) + 12*time.Hour) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

// LineSubtotal precio * (1 - descuento/100) * cantidad.
func LineSubtotal(unitPrice, discountPct, qty decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(decimal.NewFromInt(100)))
	return unitPrice.Mul(factor).Mul(qty)
}
