package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe receta que produce YieldPerBatch unidades de un producto terminado por batch.
type Recipe struct {
	ID            string
	ProductID     string
	Name          string
	YieldPerBatch decimal.Decimal
	Lines         []RecipeLine
	CreatedAt     time.Time
}

// RecipeLine cantidad de insumo requerida por unidad de batch.
type RecipeLine struct {
	ID              string
	RecipeID        string
	RawMaterialID   string
	MaterialName    string
	QuantityPerUnit decimal.Decimal
	Optional        bool
}

// RequiredLines líneas no opcionales; las opcionales nunca se validan ni se descuentan.
func (r *Recipe) RequiredLines() []RecipeLine {
	out := make([]RecipeLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		if !l.Optional {
			out = append(out, l)
		}
	}
	return out
}
