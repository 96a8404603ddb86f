package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/inventory"
)

// Motivos de los movimientos generados por ingresos.
const (
	ReasonReceiptEntry = "ingreso de insumos"
	ReasonReceiptVoid  = "anulación de ingreso"
)

// LotLine datos de un lote a registrar.
type LotLine struct {
	RawMaterialID  string
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	UnitCost       decimal.Decimal
}

// LotRegistry administra el ciclo de vida de los lotes. El llamador es dueño de la transacción.
type LotRegistry struct {
	ledger *MovementLedger
	now    func() time.Time
}

// NewLotRegistry construye el registro de lotes.
func NewLotRegistry(ledger *MovementLedger) *LotRegistry {
	return &LotRegistry{ledger: ledger, now: time.Now}
}

// RegisterLots persiste un lote por línea. La cantidad restante es la recibida solo si el
// ingreso ya está COMPLETADO; si no, el lote queda en cero hasta ActivateOnComplete.
// No escribe en el kardex.
func (g *LotRegistry) RegisterLots(ctx context.Context, r Repos, receipt *entity.GoodsReceipt, lines []LotLine) ([]*entity.Lot, error) {
	if receipt == nil || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ids := make([]string, 0, len(lines))
	for _, ln := range lines {
		if ln.RawMaterialID == "" || !ln.Quantity.GreaterThan(decimal.Zero) || !inventory.FitsQuantityScale(ln.Quantity) || ln.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, ln.RawMaterialID)
	}
	materials, err := r.Materials.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if materials[id] == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := g.now()
	lots := make([]*entity.Lot, 0, len(lines))
	for _, ln := range lines {
		remaining := decimal.Zero
		if receipt.IsCompleted() {
			remaining = ln.Quantity
		}
		lot := &entity.Lot{
			ID:                uuid.New().String(),
			ReceiptID:         receipt.ID,
			RawMaterialID:     ln.RawMaterialID,
			QuantityReceived:  ln.Quantity,
			QuantityRemaining: remaining,
			ExpirationDate:    ln.ExpirationDate,
			UnitCost:          ln.UnitCost,
			CreatedAt:         now,
		}
		if err := r.Lots.Create(ctx, lot); err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

// ActivateOnComplete deja cada lote del ingreso COMPLETADO con restante = recibido y registra
// su ENTRADA en el kardex. Los lotes que ya tienen ENTRADA se omiten, así que repetir la
// llamada no duplica movimientos.
func (g *LotRegistry) ActivateOnComplete(ctx context.Context, r Repos, receiptID, userID string) ([]*entity.MaterialMovement, error) {
	receipt, err := r.Receipts.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	if !receipt.IsCompleted() {
		return nil, domain.ErrInvalidTransition
	}
	lots, err := r.Lots.ListByReceiptForUpdate(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	movs := make([]*entity.MaterialMovement, 0, len(lots))
	for _, lot := range lots {
		done, err := r.Movements.HasLotEntry(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		if done {
			continue
		}
		if err := r.Lots.UpdateRemaining(ctx, lot.ID, lot.QuantityReceived); err != nil {
			return nil, err
		}
		lot.QuantityRemaining = lot.QuantityReceived
		mov, err := g.ledger.RecordMaterial(ctx, r, MaterialMovementInput{
			Direction:      entity.DirectionIn,
			RawMaterialID:  lot.RawMaterialID,
			LotID:          lot.ID,
			Quantity:       lot.QuantityReceived,
			QuantityBefore: decimal.Zero,
			QuantityAfter:  lot.QuantityReceived,
			UnitCost:       lot.UnitCost,
			OriginType:     entity.OriginReceipt,
			OriginID:       receiptID,
			Reason:         ReasonReceiptEntry,
			UserID:         userID,
		})
		if err != nil {
			return nil, err
		}
		movs = append(movs, mov)
	}
	return movs, nil
}

// AvailableStock stock derivado por insumo (suma de lotes activos). Insumos sin lotes = 0.
func (g *LotRegistry) AvailableStock(ctx context.Context, r Repos, materialIDs []string) (map[string]decimal.Decimal, error) {
	sums, err := r.Lots.SumAvailable(ctx, materialIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(materialIDs))
	for _, id := range materialIDs {
		out[id] = sums[id]
	}
	return out, nil
}

// VoidLots retira del stock los lotes de un ingreso anulado con SALIDAS compensatorias.
// Falla con ErrConflict si algún lote ya fue consumido.
func (g *LotRegistry) VoidLots(ctx context.Context, r Repos, receipt *entity.GoodsReceipt, wasCompleted bool, userID string) ([]*entity.MaterialMovement, error) {
	lots, err := r.Lots.ListByReceiptForUpdate(ctx, receipt.ID)
	if err != nil {
		return nil, err
	}
	if !wasCompleted {
		return nil, nil
	}
	for _, lot := range lots {
		if lot.IsConsumed() {
			return nil, domain.ErrConflict
		}
	}
	movs := make([]*entity.MaterialMovement, 0, len(lots))
	for _, lot := range lots {
		if !lot.HasStock() {
			continue
		}
		before := lot.QuantityRemaining
		if err := r.Lots.UpdateRemaining(ctx, lot.ID, decimal.Zero); err != nil {
			return nil, err
		}
		lot.QuantityRemaining = decimal.Zero
		mov, err := g.ledger.RecordMaterial(ctx, r, MaterialMovementInput{
			Direction:      entity.DirectionOut,
			RawMaterialID:  lot.RawMaterialID,
			LotID:          lot.ID,
			Quantity:       before,
			QuantityBefore: before,
			QuantityAfter:  decimal.Zero,
			UnitCost:       lot.UnitCost,
			OriginType:     entity.OriginReceipt,
			OriginID:       receipt.ID,
			Reason:         ReasonReceiptVoid,
			UserID:         userID,
		})
		if err != nil {
			return nil, err
		}
		movs = append(movs, mov)
	}
	return movs, nil
}
