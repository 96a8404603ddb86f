package inventory

import "github.com/shopspring/decimal"

// CostCalculator costo promedio ponderado del producto terminado al acreditar producción.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	if stockActual.LessThan(decimal.Zero) {
		stockActual = decimal.Zero
	}
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// UnitCostOf costo unitario de un batch; cero si no se produjo nada.
func UnitCostOf(totalCost, produced decimal.Decimal) decimal.Decimal {
	if !produced.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return totalCost.Div(produced)
}
