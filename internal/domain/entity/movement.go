package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction sentido del movimiento en el kardex.
type Direction string

const (
	DirectionIn  Direction = "ENTRADA"
	DirectionOut Direction = "SALIDA"
)

// Tipos de documento origen de un movimiento.
const (
	OriginReceipt    = "INGRESO"
	OriginProduction = "PRODUCCION"
	OriginSale       = "VENTA"
)

// Signed cantidad con signo según la dirección (ENTRADA +, SALIDA -).
func (d Direction) Signed(q decimal.Decimal) decimal.Decimal {
	if d == DirectionOut {
		return q.Neg()
	}
	return q
}

// MaterialMovement registro inmutable del kardex de insumos (tabla movimiento_insumos).
type MaterialMovement struct {
	ID             string
	Number         string // MOV-YYYYMM-NNNNN
	Direction      Direction
	RawMaterialID  string
	LotID          string
	Quantity       decimal.Decimal // siempre positiva
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	UnitCost       decimal.Decimal
	OriginType     string
	OriginID       string
	Reason         string
	CreatedBy      string
	CreatedAt      time.Time
}

// ProductMovement registro inmutable del kardex de productos terminados
// (tabla movimiento_productos_terminados).
type ProductMovement struct {
	ID             string
	Number         string // MPT-YYYYMM-NNNNN
	Direction      Direction
	ProductID      string
	Quantity       decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	OriginType     string
	OriginID       string
	Reason         string
	CreatedBy      string
	CreatedAt      time.Time
}
