package production

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// Trace cabecera, consumo por lote y crédito al producto terminado de una producción.
// Los dos kardex y la receta se cargan en paralelo; el resultado se guarda en caché.
func (e *Engine) Trace(ctx context.Context, productionID string) (*dto.ProductionTraceResponse, error) {
	if productionID == "" {
		return nil, domain.ErrInvalidInput
	}
	if cached, ok, err := e.cache.GetTrace(ctx, productionID); err != nil {
		e.log.Warn().Err(err).Str("produccion", productionID).Msg("caché de trazabilidad no disponible")
	} else if ok {
		return cached, nil
	}

	run, err := e.repos.Productions.GetByID(ctx, productionID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}

	var (
		consumed []*entity.MaterialMovement
		credited []*entity.ProductMovement
		names    = map[string]string{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movs, err := e.repos.Movements.ListMaterialByOrigin(gctx, entity.OriginProduction, run.ID)
		consumed = movs
		return err
	})
	g.Go(func() error {
		movs, err := e.repos.Movements.ListProductByOrigin(gctx, entity.OriginProduction, run.ID)
		credited = movs
		return err
	})
	g.Go(func() error {
		recipe, err := e.repos.Recipes.GetByID(gctx, run.RecipeID)
		if err != nil || recipe == nil {
			return err
		}
		for _, ln := range recipe.Lines {
			names[ln.RawMaterialID] = ln.MaterialName
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.ProductionTraceResponse{
		ID:           run.ID,
		Number:       run.Number,
		RecipeID:     run.RecipeID,
		ProductID:    run.ProductID,
		BatchSize:    run.BatchSize,
		Produced:     run.Produced,
		TotalCost:    run.TotalCost,
		CreatedBy:    run.CreatedBy,
		CreatedAt:    run.CreatedAt,
		Consumptions: make([]dto.LotConsumptionDTO, 0, len(consumed)),
	}
	for _, m := range consumed {
		out.Consumptions = append(out.Consumptions, dto.LotConsumptionDTO{
			MovementNumber: m.Number,
			LotID:          m.LotID,
			RawMaterialID:  m.RawMaterialID,
			MaterialName:   names[m.RawMaterialID],
			Quantity:       m.Quantity,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			UnitCost:       m.UnitCost,
		})
	}
	if len(credited) > 0 {
		credit := inventory.ProductMovementToDTO(credited[0])
		out.Credit = &credit
	}

	if err := e.cache.SetTrace(ctx, out); err != nil {
		e.log.Warn().Err(err).Str("produccion", run.ID).Msg("no se pudo guardar la trazabilidad en caché")
	}
	return out, nil
}

// ListRuns producciones más recientes primero, con filtro opcional de fechas.
func (e *Engine) ListRuns(ctx context.Context, from, to *time.Time, page dto.PageRequest) (*dto.ProductionListResponse, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := inventory.NormalizePage(page)
	runs, err := e.repos.Productions.List(ctx, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionRunDTO, 0, len(runs))
	for _, run := range runs {
		items = append(items, dto.ProductionRunDTO{
			ID:        run.ID,
			Number:    run.Number,
			RecipeID:  run.RecipeID,
			ProductID: run.ProductID,
			BatchSize: run.BatchSize,
			Produced:  run.Produced,
			TotalCost: run.TotalCost,
			CreatedBy: run.CreatedBy,
			CreatedAt: run.CreatedAt,
		})
	}
	return &dto.ProductionListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}
