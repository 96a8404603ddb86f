package sales

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	domaininv "github.com/jhoicas/panaderia-api/internal/domain/inventory"
)

// SuggestDiscounts productos con stock cuya última producción tiene 1 o más días.
// Es informativo: nunca modifica precios.
func (e *Engine) SuggestDiscounts(ctx context.Context, now time.Time) ([]dto.DiscountSuggestionDTO, error) {
	goods, err := e.repos.Goods.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(goods) == 0 {
		return []dto.DiscountSuggestionDTO{}, nil
	}
	ids := make([]string, 0, len(goods))
	for _, g := range goods {
		ids = append(ids, g.ID)
	}
	last, err := e.repos.Productions.LastProductionDates(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DiscountSuggestionDTO, 0, len(goods))
	for _, g := range goods {
		produced, ok := last[g.ID]
		if !ok {
			continue
		}
		age := domaininv.AgeInDays(produced, now)
		pct := domaininv.SuggestedDiscountPct(age)
		if pct.IsZero() {
			continue
		}
		out = append(out, dto.DiscountSuggestionDTO{
			ProductID:      g.ID,
			Name:           g.Name,
			Stock:          g.StockActual,
			Price:          g.Price,
			LastProduction: produced,
			AgeDays:        age,
			DiscountPct:    pct,
			SuggestedPrice: domaininv.LineSubtotal(g.Price, pct, decimal.NewFromInt(1)).Round(2),
		})
	}

	// Más antiguos primero; empate por nombre.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AgeDays != out[j].AgeDays {
			return out[i].AgeDays > out[j].AgeDays
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
