package entity

import "time"

// RawMaterial insumo del catálogo. Su stock no se almacena: es la suma de
// QuantityRemaining de sus lotes activos.
type RawMaterial struct {
	ID        string
	Name      string
	Unit      string // kg, g, l, unidad
	CreatedAt time.Time
}
