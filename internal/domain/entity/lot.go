package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote de insumo recibido (tabla ingresos_insumos_detalle).
// QuantityRemaining nunca es negativa y solo disminuye por descuento FEFO.
type Lot struct {
	ID                string
	ReceiptID         string
	RawMaterialID     string
	QuantityReceived  decimal.Decimal
	QuantityRemaining decimal.Decimal
	ExpirationDate    *time.Time // nil = sin vencimiento
	UnitCost          decimal.Decimal
	CreatedAt         time.Time
	Seq               int64 // orden de inserción; lo asigna el almacenamiento al crear el lote
}

// HasStock indica si el lote tiene cantidad disponible.
func (l *Lot) HasStock() bool {
	return l.QuantityRemaining.GreaterThan(decimal.Zero)
}

// IsConsumed indica si ya se descontó algo del lote.
func (l *Lot) IsConsumed() bool {
	return l.QuantityRemaining.LessThan(l.QuantityReceived)
}

// DaysUntilExpiry días calendario (en la zona de now) hasta el vencimiento; negativo si
// ya venció. ok es false si el lote no vence.
func (l *Lot) DaysUntilExpiry(now time.Time) (days int, ok bool) {
	if l.ExpirationDate == nil {
		return 0, false
	}
	ey, em, ed := l.ExpirationDate.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())
	start := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	return int(end.Sub(start).Round(24*time.Hour) / (24 * time.Hour)), true
}
