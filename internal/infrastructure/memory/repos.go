package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	fefo "github.com/jhoicas/panaderia-api/internal/domain/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var (
	_ repository.LotRepository          = (*lotRepo)(nil)
	_ repository.ReceiptRepository      = (*receiptRepo)(nil)
	_ repository.RawMaterialRepository  = (*materialRepo)(nil)
	_ repository.MovementRepository     = (*movementRepo)(nil)
	_ repository.SequenceRepository     = (*sequenceRepo)(nil)
	_ repository.RecipeRepository       = (*recipeRepo)(nil)
	_ repository.ProductionRepository   = (*productionRepo)(nil)
	_ repository.FinishedGoodRepository = (*goodRepo)(nil)
	_ repository.SaleRepository         = (*saleRepo)(nil)
)

// ── lotes ────────────────────────────────────────────────────────────────────

type lotRepo struct{ s *Store }

func (r *lotRepo) Create(_ context.Context, lot *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("lots.Create"); err != nil {
		return err
	}
	r.s.st.lotSeq++
	lot.Seq = r.s.st.lotSeq
	r.s.st.lots[lot.ID] = *lot
	return nil
}

func (r *lotRepo) ListByReceipt(_ context.Context, receiptID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.filterLots(func(l entity.Lot) bool { return l.ReceiptID == receiptID })
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (r *lotRepo) ListByReceiptForUpdate(_ context.Context, receiptID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.filterLots(func(l entity.Lot) bool { return l.ReceiptID == receiptID })
	sortLockOrder(out)
	return out, nil
}

func (r *lotRepo) ListActiveByMaterial(_ context.Context, materialID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.filterLots(func(l entity.Lot) bool { return l.RawMaterialID == materialID && r.s.activeLocked(l) })
	fefo.SortFEFO(out)
	return out, nil
}

func (r *lotRepo) ListActiveForUpdate(_ context.Context, materialIDs []string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := toSet(materialIDs)
	out := r.filterLots(func(l entity.Lot) bool { return want[l.RawMaterialID] && r.s.activeLocked(l) })
	sortLockOrder(out)
	return out, nil
}

// sortLockOrder orden (insumo, id) con que se bloquean lotes en todos los caminos.
func sortLockOrder(lots []*entity.Lot) {
	sort.Slice(lots, func(i, j int) bool {
		if lots[i].RawMaterialID != lots[j].RawMaterialID {
			return lots[i].RawMaterialID < lots[j].RawMaterialID
		}
		return lots[i].ID < lots[j].ID
	})
}

func (r *lotRepo) UpdateRemaining(_ context.Context, lotID string, remaining decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("lots.UpdateRemaining"); err != nil {
		return err
	}
	l, ok := r.s.st.lots[lotID]
	if !ok {
		return nil
	}
	l.QuantityRemaining = remaining
	r.s.st.lots[lotID] = l
	return nil
}

func (r *lotRepo) SumAvailable(_ context.Context, materialIDs []string) (map[string]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]decimal.Decimal, len(materialIDs))
	for _, id := range materialIDs {
		out[id] = decimal.Zero
	}
	for _, l := range r.s.st.lots {
		if cur, ok := out[l.RawMaterialID]; ok && r.s.activeLocked(l) {
			out[l.RawMaterialID] = cur.Add(l.QuantityRemaining)
		}
	}
	return out, nil
}

func (r *lotRepo) filterLots(keep func(entity.Lot) bool) []*entity.Lot {
	out := make([]*entity.Lot, 0)
	for _, l := range r.s.st.lots {
		if keep(l) {
			c := l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── ingresos ─────────────────────────────────────────────────────────────────

type receiptRepo struct{ s *Store }

func (r *receiptRepo) Create(_ context.Context, rc *entity.GoodsReceipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("receipts.Create"); err != nil {
		return err
	}
	r.s.st.receipts[rc.ID] = *rc
	return nil
}

func (r *receiptRepo) GetByID(_ context.Context, id string) (*entity.GoodsReceipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rc, ok := r.s.st.receipts[id]
	if !ok {
		return nil, nil
	}
	return &rc, nil
}

func (r *receiptRepo) GetForUpdate(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	return r.GetByID(ctx, id)
}

func (r *receiptRepo) UpdateState(_ context.Context, rc *entity.GoodsReceipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("receipts.UpdateState"); err != nil {
		return err
	}
	cur, ok := r.s.st.receipts[rc.ID]
	if !ok {
		return nil
	}
	cur.State = rc.State
	cur.UpdatedAt = rc.UpdatedAt
	r.s.st.receipts[rc.ID] = cur
	return nil
}

// ── insumos ──────────────────────────────────────────────────────────────────

type materialRepo struct{ s *Store }

func (r *materialRepo) GetByID(_ context.Context, id string) (*entity.RawMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.st.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *materialRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.RawMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]*entity.RawMaterial, len(ids))
	for _, id := range ids {
		if m, ok := r.s.st.materials[id]; ok {
			c := m
			out[id] = &c
		}
	}
	return out, nil
}

// ── kardex ───────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) CreateMaterial(_ context.Context, m *entity.MaterialMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("movements.CreateMaterial"); err != nil {
		return err
	}
	r.s.st.matMovs = append(r.s.st.matMovs, *m)
	return nil
}

func (r *movementRepo) CreateProduct(_ context.Context, m *entity.ProductMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("movements.CreateProduct"); err != nil {
		return err
	}
	r.s.st.prodMovs = append(r.s.st.prodMovs, *m)
	return nil
}

func (r *movementRepo) HasLotEntry(_ context.Context, lotID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.st.matMovs {
		if m.LotID == lotID && m.Direction == entity.DirectionIn {
			return true, nil
		}
	}
	return false, nil
}

func (r *movementRepo) ListMaterialByOrigin(_ context.Context, originType, originID string) ([]*entity.MaterialMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.MaterialMovement, 0)
	for _, m := range r.s.st.matMovs {
		if m.OriginType == originType && m.OriginID == originID {
			c := m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *movementRepo) ListProductByOrigin(_ context.Context, originType, originID string) ([]*entity.ProductMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ProductMovement, 0)
	for _, m := range r.s.st.prodMovs {
		if m.OriginType == originType && m.OriginID == originID {
			c := m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *movementRepo) ListMaterialKardex(_ context.Context, materialID string, from, to *time.Time, limit, offset int) ([]*entity.MaterialMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.MaterialMovement, 0)
	for i := len(r.s.st.matMovs) - 1; i >= 0; i-- {
		m := r.s.st.matMovs[i]
		if m.RawMaterialID == materialID && inRange(m.CreatedAt, from, to) {
			c := m
			out = append(out, &c)
		}
	}
	return page(out, limit, offset), nil
}

func (r *movementRepo) ListProductKardex(_ context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.ProductMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ProductMovement, 0)
	for i := len(r.s.st.prodMovs) - 1; i >= 0; i-- {
		m := r.s.st.prodMovs[i]
		if m.ProductID == productID && inRange(m.CreatedAt, from, to) {
			c := m
			out = append(out, &c)
		}
	}
	return page(out, limit, offset), nil
}

func (r *movementRepo) SumMaterialSigned(_ context.Context, materialID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, m := range r.s.st.matMovs {
		if m.RawMaterialID == materialID {
			total = total.Add(m.Direction.Signed(m.Quantity))
		}
	}
	return total, nil
}

// ── secuencias ───────────────────────────────────────────────────────────────

type sequenceRepo struct{ s *Store }

func (r *sequenceRepo) Next(_ context.Context, prefix, period string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("sequences.Next"); err != nil {
		return 0, err
	}
	key := prefix + ":" + period
	r.s.st.sequences[key]++
	return r.s.st.sequences[key], nil
}

// ── recetas ──────────────────────────────────────────────────────────────────

type recipeRepo struct{ s *Store }

func (r *recipeRepo) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rc, ok := r.s.st.recipes[id]
	if !ok {
		return nil, nil
	}
	lines := make([]entity.RecipeLine, 0, len(rc.Lines))
	for _, ln := range rc.Lines {
		if m, ok := r.s.st.materials[ln.RawMaterialID]; ok && ln.MaterialName == "" {
			ln.MaterialName = m.Name
		}
		lines = append(lines, ln)
	}
	rc.Lines = lines
	return &rc, nil
}

// ── producción ───────────────────────────────────────────────────────────────

type productionRepo struct{ s *Store }

func (r *productionRepo) Create(_ context.Context, run *entity.ProductionRun) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("productions.Create"); err != nil {
		return err
	}
	r.s.st.productions[run.ID] = *run
	return nil
}

func (r *productionRepo) GetByID(_ context.Context, id string) (*entity.ProductionRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	run, ok := r.s.st.productions[id]
	if !ok {
		return nil, nil
	}
	return &run, nil
}

func (r *productionRepo) List(_ context.Context, from, to *time.Time, limit, offset int) ([]*entity.ProductionRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ProductionRun, 0, len(r.s.st.productions))
	for _, run := range r.s.st.productions {
		if inRange(run.CreatedAt, from, to) {
			c := run
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return page(out, limit, offset), nil
}

func (r *productionRepo) LastProductionDates(_ context.Context, productIDs []string) (map[string]time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := toSet(productIDs)
	out := make(map[string]time.Time)
	for _, run := range r.s.st.productions {
		if !want[run.ProductID] {
			continue
		}
		if cur, ok := out[run.ProductID]; !ok || run.CreatedAt.After(cur) {
			out[run.ProductID] = run.CreatedAt
		}
	}
	return out, nil
}

// ── productos terminados ─────────────────────────────────────────────────────

type goodRepo struct{ s *Store }

func (r *goodRepo) GetByID(_ context.Context, id string) (*entity.FinishedGood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.st.goods[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *goodRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.FinishedGood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]*entity.FinishedGood, len(ids))
	for _, id := range ids {
		if g, ok := r.s.st.goods[id]; ok {
			c := g
			out[id] = &c
		}
	}
	return out, nil
}

func (r *goodRepo) GetForUpdate(ctx context.Context, ids []string) (map[string]*entity.FinishedGood, error) {
	return r.GetByIDs(ctx, ids)
}

func (r *goodRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("goods.UpdateStock"); err != nil {
		return err
	}
	g, ok := r.s.st.goods[id]
	if !ok {
		return nil
	}
	g.StockActual = stock
	r.s.st.goods[id] = g
	return nil
}

func (r *goodRepo) UpdateStockAndCost(_ context.Context, id string, stock, unitCost decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("goods.UpdateStockAndCost"); err != nil {
		return err
	}
	g, ok := r.s.st.goods[id]
	if !ok {
		return nil
	}
	g.StockActual = stock
	g.UnitCost = unitCost
	r.s.st.goods[id] = g
	return nil
}

func (r *goodRepo) ListAvailable(_ context.Context) ([]*entity.FinishedGood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.FinishedGood, 0)
	for _, g := range r.s.st.goods {
		if g.StockActual.GreaterThan(decimal.Zero) {
			c := g
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── ventas ───────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("sales.Create"); err != nil {
		return err
	}
	c := *sale
	c.Lines = nil
	r.s.st.sales[sale.ID] = c
	r.s.st.saleOrder = append(r.s.st.saleOrder, sale.ID)
	return nil
}

func (r *saleRepo) CreateLine(_ context.Context, line *entity.SaleLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("sales.CreateLine"); err != nil {
		return err
	}
	sale, ok := r.s.st.sales[line.SaleID]
	if !ok {
		return nil
	}
	sale.Lines = append(append([]entity.SaleLine(nil), sale.Lines...), *line)
	r.s.st.sales[line.SaleID] = sale
	return nil
}

func (r *saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.st.sales[id]
	if !ok {
		return nil, nil
	}
	sale.Lines = append([]entity.SaleLine(nil), sale.Lines...)
	return &sale, nil
}

func (r *saleRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

func (r *saleRepo) UpdateStatus(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("sales.UpdateStatus"); err != nil {
		return err
	}
	cur, ok := r.s.st.sales[sale.ID]
	if !ok {
		return nil
	}
	cur.Status = sale.Status
	cur.VoidedAt = sale.VoidedAt
	cur.VoidedBy = sale.VoidedBy
	r.s.st.sales[sale.ID] = cur
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
