package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinishedGood producto terminado con un único contador de stock (no maneja lotes).
type FinishedGood struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio de venta
	UnitCost    decimal.Decimal // costo promedio ponderado de producción
	StockActual decimal.Decimal
	UpdatedAt   time.Time
}
