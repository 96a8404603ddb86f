package inventory

import "github.com/shopspring/decimal"

// QuantityScale decimales con que se persisten cantidades y saldos (NUMERIC(14, 4)).
const QuantityScale int32 = 4

// RoundQuantity redondea q a QuantityScale. Requeridos, tomas y saldos se calculan ya
// redondeados para que el kardex cuadre con los lotes guardados.
func RoundQuantity(q decimal.Decimal) decimal.Decimal {
	return q.Round(QuantityScale)
}

// FitsQuantityScale indica si q no tiene más decimales de los que se pueden guardar.
func FitsQuantityScale(q decimal.Decimal) bool {
	return q.Equal(q.Round(QuantityScale))
}
