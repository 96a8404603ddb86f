package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain"
)

// maxPageLimit tope de filas por página.
const maxPageLimit = 100

// KardexUseCase consultas de solo lectura sobre lotes y kardex.
type KardexUseCase struct {
	repos    Repos
	registry *LotRegistry
	now      func() time.Time
}

// NewKardexUseCase construye el caso de uso con repos atados al pool.
func NewKardexUseCase(repos Repos, registry *LotRegistry) *KardexUseCase {
	return &KardexUseCase{repos: repos, registry: registry, now: time.Now}
}

// PreviewLots orden FEFO en que se consumirían los lotes del insumo.
func (uc *KardexUseCase) PreviewLots(ctx context.Context, materialID string) (*dto.LotPreviewResponse, error) {
	if err := uc.ensureMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	lots, err := uc.repos.Lots.ListActiveByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	cands := candidates(lots)
	now := uc.now()
	out := &dto.LotPreviewResponse{RawMaterialID: materialID, Available: decimal.Zero, Lots: make([]dto.LotDTO, 0, len(cands))}
	for _, c := range cands {
		out.Available = out.Available.Add(c.Available)
		out.Lots = append(out.Lots, LotToDTO(c.Lot, now))
	}
	return out, nil
}

// ListMaterialKardex movimientos del insumo, más recientes primero.
func (uc *KardexUseCase) ListMaterialKardex(ctx context.Context, materialID string, f dto.KardexFilter) (*dto.MaterialKardexResponse, error) {
	if err := uc.ensureMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := NormalizePage(f.PageRequest)
	rows, err := uc.repos.Movements.ListMaterialKardex(ctx, materialID, f.From, f.To, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialMovementDTO, 0, len(rows))
	for _, m := range rows {
		items = append(items, MaterialMovementToDTO(m))
	}
	return &dto.MaterialKardexResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListProductKardex movimientos del producto terminado, más recientes primero.
func (uc *KardexUseCase) ListProductKardex(ctx context.Context, productID string, f dto.KardexFilter) (*dto.ProductKardexResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	good, err := uc.repos.Goods.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, domain.ErrNotFound
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := NormalizePage(f.PageRequest)
	rows, err := uc.repos.Movements.ListProductKardex(ctx, productID, f.From, f.To, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductMovementDTO, 0, len(rows))
	for _, m := range rows {
		items = append(items, ProductMovementToDTO(m))
	}
	return &dto.ProductKardexResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// VerifyMaterialBalance compara la suma con signo del kardex contra el stock derivado de lotes.
func (uc *KardexUseCase) VerifyMaterialBalance(ctx context.Context, materialID string) (*dto.BalanceCheckResponse, error) {
	if err := uc.ensureMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	ledger, err := uc.repos.Movements.SumMaterialSigned(ctx, materialID)
	if err != nil {
		return nil, err
	}
	stock, err := uc.registry.AvailableStock(ctx, uc.repos, []string{materialID})
	if err != nil {
		return nil, err
	}
	lots := stock[materialID]
	diff := lots.Sub(ledger)
	return &dto.BalanceCheckResponse{
		RawMaterialID: materialID,
		LotsTotal:     lots,
		LedgerTotal:   ledger,
		Difference:    diff,
		Consistent:    diff.IsZero(),
	}, nil
}

func (uc *KardexUseCase) ensureMaterial(ctx context.Context, materialID string) error {
	if materialID == "" {
		return domain.ErrInvalidInput
	}
	m, err := uc.repos.Materials.GetByID(ctx, materialID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return nil
}

// NormalizePage aplica valores por defecto y el tope de filas.
func NormalizePage(p dto.PageRequest) (int, int) {
	p.DefaultPage()
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p.Limit, p.Offset
}
