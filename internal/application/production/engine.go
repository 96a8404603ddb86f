package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	domaininv "github.com/jhoicas/panaderia-api/internal/domain/inventory"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

// Motivos de los movimientos generados por una producción.
const (
	ReasonProductionUse    = "consumo de producción"
	ReasonProductionCredit = "ingreso por producción"
)

// ExecuteInput datos para ejecutar una receta.
type ExecuteInput struct {
	RecipeID  string
	BatchSize decimal.Decimal
	UserID    string
	Notes     string
}

// Engine ejecuta recetas: valida stock, descuenta lotes FEFO y acredita producto terminado
// en una sola transacción.
type Engine struct {
	repos    inventory.Repos
	txRunner inventory.TxRunner
	ledger   *inventory.MovementLedger
	registry *inventory.LotRegistry
	cache    TraceCache
	log      *logger.Logger
	now      func() time.Time
}

// NewEngine construye el motor. repos son los repos de lectura (pool); cache puede ser nil.
func NewEngine(
	repos inventory.Repos,
	txRunner inventory.TxRunner,
	ledger *inventory.MovementLedger,
	registry *inventory.LotRegistry,
	cache TraceCache,
	log *logger.Logger,
) *Engine {
	if cache == nil {
		cache = noCache{}
	}
	return &Engine{
		repos:    repos,
		txRunner: txRunner,
		ledger:   ledger,
		registry: registry,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

// requirement cantidad total de un insumo que exige un batch.
type requirement struct {
	materialID string
	name       string
	required   decimal.Decimal
}

// requirements agrupa las líneas no opcionales por insumo, en el orden de la receta.
// El total por insumo se redondea a la escala de almacenamiento; un requerido que
// queda en cero en esa escala es ErrInvalidInput.
func requirements(recipe *entity.Recipe, batch decimal.Decimal) ([]requirement, error) {
	out := make([]requirement, 0, len(recipe.Lines))
	idx := make(map[string]int, len(recipe.Lines))
	for _, ln := range recipe.RequiredLines() {
		qty := ln.QuantityPerUnit.Mul(batch)
		if i, ok := idx[ln.RawMaterialID]; ok {
			out[i].required = out[i].required.Add(qty)
			continue
		}
		idx[ln.RawMaterialID] = len(out)
		out = append(out, requirement{materialID: ln.RawMaterialID, name: ln.MaterialName, required: qty})
	}
	for i := range out {
		out[i].required = domaininv.RoundQuantity(out[i].required)
		if !out[i].required.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("insumo %s: cantidad requerida por debajo de la escala: %w", out[i].materialID, domain.ErrInvalidInput)
		}
	}
	return out, nil
}

func materialIDs(reqs []requirement) []string {
	ids := make([]string, 0, len(reqs))
	for _, rq := range reqs {
		ids = append(ids, rq.materialID)
	}
	return ids
}

func (e *Engine) loadRecipe(ctx context.Context, r inventory.Repos, recipeID string, batch decimal.Decimal) (*entity.Recipe, error) {
	if recipeID == "" || !batch.GreaterThan(decimal.Zero) || !domaininv.FitsQuantityScale(batch) {
		return nil, domain.ErrInvalidInput
	}
	recipe, err := r.Recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	if !recipe.YieldPerBatch.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return recipe, nil
}

// ValidateStock compara lo requerido por el batch con el stock derivado de lotes.
// Solo lectura: no modifica nada.
func (e *Engine) ValidateStock(ctx context.Context, recipeID string, batchSize decimal.Decimal) (*dto.StockValidationResponse, error) {
	recipe, err := e.loadRecipe(ctx, e.repos, recipeID, batchSize)
	if err != nil {
		return nil, err
	}
	reqs, err := requirements(recipe, batchSize)
	if err != nil {
		return nil, err
	}
	stock, err := e.registry.AvailableStock(ctx, e.repos, materialIDs(reqs))
	if err != nil {
		return nil, err
	}
	out := &dto.StockValidationResponse{
		RecipeID:    recipe.ID,
		BatchSize:   batchSize,
		Sufficient:  true,
		Ingredients: make([]dto.IngredientCheckDTO, 0, len(reqs)),
	}
	for _, rq := range reqs {
		avail := stock[rq.materialID]
		ok := avail.GreaterThanOrEqual(rq.required)
		if !ok {
			out.Sufficient = false
		}
		out.Ingredients = append(out.Ingredients, dto.IngredientCheckDTO{
			RawMaterialID: rq.materialID,
			Name:          rq.name,
			Required:      rq.required,
			Available:     avail,
			Sufficient:    ok,
		})
	}
	return out, nil
}

// shortagesOf ingredientes insuficientes de una validación.
func shortagesOf(v *dto.StockValidationResponse) []domain.StockShortage {
	var out []domain.StockShortage
	for _, ing := range v.Ingredients {
		if !ing.Sufficient {
			out = append(out, domain.StockShortage{ID: ing.RawMaterialID, Name: ing.Name, Required: ing.Required, Available: ing.Available})
		}
	}
	return out
}

// Execute valida en seco y luego, en una transacción: bloquea lotes, revalida, crea la cabecera
// PROD-YYYYMM-N, descuenta FEFO con una SALIDA por lote tocado y acredita el producto terminado.
// Si cualquier escritura falla, todo se revierte y el error es *domain.ExecutionError.
func (e *Engine) Execute(ctx context.Context, in ExecuteInput) (*dto.ProductionResponse, error) {
	if in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	validation, err := e.ValidateStock(ctx, in.RecipeID, in.BatchSize)
	if err != nil {
		return nil, err
	}
	if !validation.Sufficient {
		return nil, &domain.InsufficientStockError{Items: shortagesOf(validation)}
	}
	recipe, err := e.loadRecipe(ctx, e.repos, in.RecipeID, in.BatchSize)
	if err != nil {
		return nil, err
	}
	good, err := e.repos.Goods.GetByID(ctx, recipe.ProductID)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, domain.ErrNotFound
	}

	reqs, err := requirements(recipe, in.BatchSize)
	if err != nil {
		return nil, err
	}
	produced := domaininv.RoundQuantity(in.BatchSize.Mul(recipe.YieldPerBatch))
	if !produced.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := e.now()
	var run *entity.ProductionRun

	err = e.txRunner.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
		locked, err := inventory.LockLots(ctx, r, materialIDs(reqs))
		if err != nil {
			return err
		}
		plans := make([][]domaininv.Deduction, len(reqs))
		var shortages []domain.StockShortage
		for i, rq := range reqs {
			plan, missing := domaininv.PlanDeduction(locked[rq.materialID], rq.required)
			if missing.GreaterThan(decimal.Zero) {
				shortages = append(shortages, domain.StockShortage{
					ID: rq.materialID, Name: rq.name, Required: rq.required,
					Available: domaininv.TotalRemaining(locked[rq.materialID]),
				})
				continue
			}
			plans[i] = plan
		}
		if len(shortages) > 0 {
			return &domain.InsufficientStockError{Items: shortages}
		}

		totalCost := decimal.Zero
		for _, plan := range plans {
			totalCost = totalCost.Add(domaininv.DeductionCost(plan))
		}
		totalCost = totalCost.Round(domaininv.QuantityScale)

		number, err := inventory.NextDocumentNumber(ctx, r, domaininv.PrefixProduction, now)
		if err != nil {
			return err
		}
		run = &entity.ProductionRun{
			ID:        uuid.New().String(),
			Number:    number,
			RecipeID:  recipe.ID,
			ProductID: recipe.ProductID,
			BatchSize: in.BatchSize,
			Produced:  produced,
			TotalCost: totalCost,
			Notes:     in.Notes,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}
		if err := r.Productions.Create(ctx, run); err != nil {
			return err
		}

		for _, plan := range plans {
			for _, ded := range plan {
				if err := r.Lots.UpdateRemaining(ctx, ded.Lot.ID, ded.After); err != nil {
					return err
				}
				if _, err := e.ledger.RecordMaterial(ctx, r, inventory.MaterialMovementInput{
					Direction:      entity.DirectionOut,
					RawMaterialID:  ded.Lot.RawMaterialID,
					LotID:          ded.Lot.ID,
					Quantity:       ded.Quantity,
					QuantityBefore: ded.Before,
					QuantityAfter:  ded.After,
					UnitCost:       ded.Lot.UnitCost,
					OriginType:     entity.OriginProduction,
					OriginID:       run.ID,
					Reason:         ReasonProductionUse,
					UserID:         in.UserID,
				}); err != nil {
					return err
				}
			}
		}

		return e.creditFinishedGood(ctx, r, run, in.UserID)
	})
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		e.log.Error().Err(err).Str("receta", in.RecipeID).Str("batch", in.BatchSize.String()).Msg("producción revertida")
		return nil, &domain.ExecutionError{Op: "produccion.ejecutar", Err: err}
	}

	e.log.Info().
		Str("produccion", run.Number).
		Str("producto", run.ProductID).
		Str("producido", run.Produced.String()).
		Str("costo_total", run.TotalCost.String()).
		Msg("producción ejecutada")

	return &dto.ProductionResponse{
		Message:   "producción ejecutada",
		ID:        run.ID,
		Number:    run.Number,
		ProductID: run.ProductID,
		Produced:  run.Produced,
		TotalCost: run.TotalCost,
		UnitCost:  domaininv.UnitCostOf(run.TotalCost, run.Produced),
		CreatedAt: run.CreatedAt,
	}, nil
}

// creditFinishedGood bloquea el producto, suma lo producido, recalcula el costo promedio
// ponderado y registra la ENTRADA MPT.
func (e *Engine) creditFinishedGood(ctx context.Context, r inventory.Repos, run *entity.ProductionRun, userID string) error {
	goods, err := r.Goods.GetForUpdate(ctx, []string{run.ProductID})
	if err != nil {
		return err
	}
	good := goods[run.ProductID]
	if good == nil {
		return domain.ErrNotFound
	}
	batchUnitCost := domaininv.UnitCostOf(run.TotalCost, run.Produced)
	newCost := domaininv.CostCalculator(good.StockActual, good.UnitCost, run.Produced, batchUnitCost)
	newStock := good.StockActual.Add(run.Produced)
	if err := r.Goods.UpdateStockAndCost(ctx, good.ID, newStock, newCost); err != nil {
		return err
	}
	_, err = e.ledger.RecordProduct(ctx, r, inventory.ProductMovementInput{
		Direction:      entity.DirectionIn,
		ProductID:      good.ID,
		Quantity:       run.Produced,
		QuantityBefore: good.StockActual,
		QuantityAfter:  newStock,
		OriginType:     entity.OriginProduction,
		OriginID:       run.ID,
		Reason:         ReasonProductionCredit,
		UserID:         userID,
	})
	return err
}

// isBusinessError errores de negocio que se devuelven tal cual, sin envolver.
func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput)
}
