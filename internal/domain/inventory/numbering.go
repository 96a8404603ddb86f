package inventory

import (
	"fmt"
	"time"
)

// Prefijos de numeración de documentos. Cada prefijo tiene su propia secuencia mensual.
const (
	PrefixMaterialMovement = "MOV"
	PrefixProductMovement  = "MPT"
	PrefixProduction       = "PROD"
	PrefixSale             = "VENTA"
	PrefixReceipt          = "ING"
)

// movementWidth ancho del correlativo de los movimientos de kardex.
const movementWidth = 5

// Period devuelve el periodo YYYYMM al que pertenece t.
func Period(t time.Time) string {
	return t.Format("200601")
}

// MovementNumber formatea MOV-YYYYMM-NNNNN / MPT-YYYYMM-NNNNN.
func MovementNumber(prefix, period string, seq int64) string {
	return fmt.Sprintf("%s-%s-%0*d", prefix, period, movementWidth, seq)
}

// DocumentNumber formatea PROD-YYYYMM-N / VENTA-YYYYMM-N (sin relleno).
func DocumentNumber(prefix, period string, seq int64) string {
	return fmt.Sprintf("%s-%s-%d", prefix, period, seq)
}
