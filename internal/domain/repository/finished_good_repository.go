package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// FinishedGoodRepository puerto para el contador de stock de productos terminados.
type FinishedGoodRepository interface {
	GetByID(ctx context.Context, id string) (*entity.FinishedGood, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.FinishedGood, error)
	// GetForUpdate bloquea las filas en orden de id para evitar deadlocks.
	GetForUpdate(ctx context.Context, ids []string) (map[string]*entity.FinishedGood, error)
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
	UpdateStockAndCost(ctx context.Context, id string, stock, unitCost decimal.Decimal) error
	// ListAvailable productos con stock_actual > 0.
	ListAvailable(ctx context.Context) ([]*entity.FinishedGood, error)
}
