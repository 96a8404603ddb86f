package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/inventory"
)

// LotCandidate lote elegible para descuento con su cantidad disponible.
type LotCandidate struct {
	Lot       *entity.Lot
	Available decimal.Decimal
}

// SelectLots lotes activos del insumo en orden FEFO. Devuelve todos los elegibles,
// sin importar quantityNeeded; lista vacía = stock cero. Solo lectura.
func SelectLots(ctx context.Context, r Repos, materialID string, quantityNeeded decimal.Decimal) ([]LotCandidate, error) {
	if materialID == "" || !quantityNeeded.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	lots, err := r.Lots.ListActiveByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return candidates(lots), nil
}

// LockLots bloquea (FOR UPDATE) los lotes activos de los insumos y los agrupa por insumo en orden FEFO.
// Debe llamarse con repos de una transacción.
func LockLots(ctx context.Context, r Repos, materialIDs []string) (map[string][]*entity.Lot, error) {
	out := make(map[string][]*entity.Lot, len(materialIDs))
	if len(materialIDs) == 0 {
		return out, nil
	}
	lots, err := r.Lots.ListActiveForUpdate(ctx, materialIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range lots {
		out[l.RawMaterialID] = append(out[l.RawMaterialID], l)
	}
	for id := range out {
		inventory.SortFEFO(out[id])
	}
	return out, nil
}

func candidates(lots []*entity.Lot) []LotCandidate {
	active := make([]*entity.Lot, 0, len(lots))
	for _, l := range lots {
		if l.HasStock() {
			active = append(active, l)
		}
	}
	inventory.SortFEFO(active)
	out := make([]LotCandidate, 0, len(active))
	for _, l := range active {
		out = append(out, LotCandidate{Lot: l, Available: l.QuantityRemaining})
	}
	return out
}
