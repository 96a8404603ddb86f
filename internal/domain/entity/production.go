package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRun cabecera de una ejecución de receta (tabla produccion).
type ProductionRun struct {
	ID        string
	Number    string // PROD-YYYYMM-N
	RecipeID  string
	ProductID string
	BatchSize decimal.Decimal
	Produced  decimal.Decimal
	TotalCost decimal.Decimal
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
