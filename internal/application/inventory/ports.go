package inventory

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// Repos agrupa los puertos de persistencia atados a un mismo Querier (pool o tx).
type Repos struct {
	Lots        repository.LotRepository
	Receipts    repository.ReceiptRepository
	Materials   repository.RawMaterialRepository
	Movements   repository.MovementRepository
	Sequences   repository.SequenceRepository
	Recipes     repository.RecipeRepository
	Productions repository.ProductionRepository
	Goods       repository.FinishedGoodRepository
	Sales       repository.SaleRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error la transacción se revierte completa; si no, se hace Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}
