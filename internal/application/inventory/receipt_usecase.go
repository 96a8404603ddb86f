package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/inventory"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

// ReceiptUseCase crea, completa y anula ingresos de insumos. Cada operación es una transacción.
type ReceiptUseCase struct {
	txRunner TxRunner
	registry *LotRegistry
	log      *logger.Logger
	now      func() time.Time
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(txRunner TxRunner, registry *LotRegistry, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{txRunner: txRunner, registry: registry, log: log, now: time.Now}
}

// CreateReceipt registra la cabecera y sus lotes. Si el ingreso nace COMPLETADO, la
// activación de lotes (y sus ENTRADAS) ocurre en la misma transacción.
func (uc *ReceiptUseCase) CreateReceipt(ctx context.Context, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if len(in.Lines) == 0 || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	state := entity.ReceiptPending
	switch entity.ReceiptState(in.State) {
	case "", entity.ReceiptPending:
	case entity.ReceiptCompleted:
		state = entity.ReceiptCompleted
	default:
		return nil, domain.ErrInvalidInput
	}
	lines := make([]LotLine, 0, len(in.Lines))
	for _, ln := range in.Lines {
		lines = append(lines, LotLine{
			RawMaterialID:  ln.RawMaterialID,
			Quantity:       ln.Quantity,
			ExpirationDate: ln.ExpirationDate,
			UnitCost:       ln.UnitCost,
		})
	}

	now := uc.now()
	receivedAt := now
	if in.ReceivedAt != nil {
		receivedAt = *in.ReceivedAt
	}

	var out *dto.ReceiptResponse
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r Repos) error {
		number, err := NextDocumentNumber(ctx, r, inventory.PrefixReceipt, now)
		if err != nil {
			return err
		}
		receipt := &entity.GoodsReceipt{
			ID:         uuid.New().String(),
			Number:     number,
			SupplierID: in.SupplierID,
			State:      state,
			ReceivedAt: receivedAt,
			Notes:      in.Notes,
			CreatedBy:  in.UserID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Receipts.Create(ctx, receipt); err != nil {
			return err
		}
		lots, err := uc.registry.RegisterLots(ctx, r, receipt, lines)
		if err != nil {
			return err
		}
		var movs []*entity.MaterialMovement
		if receipt.IsCompleted() {
			if movs, err = uc.registry.ActivateOnComplete(ctx, r, receipt.ID, in.UserID); err != nil {
				return err
			}
		}
		out = receiptToDTO(receipt, lots, movs, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("ingreso", out.Number).Str("estado", out.State).Int("lotes", len(out.Lots)).Msg("ingreso registrado")
	return out, nil
}

// CompleteReceipt PENDIENTE -> COMPLETADO y activa los lotes.
func (uc *ReceiptUseCase) CompleteReceipt(ctx context.Context, receiptID, userID string) (*dto.ReceiptResponse, error) {
	if receiptID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ReceiptResponse
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r Repos) error {
		receipt, err := r.Receipts.GetForUpdate(ctx, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		if err := receipt.Complete(uc.now()); err != nil {
			return err
		}
		if err := r.Receipts.UpdateState(ctx, receipt); err != nil {
			return err
		}
		movs, err := uc.registry.ActivateOnComplete(ctx, r, receiptID, userID)
		if err != nil {
			return err
		}
		lots, err := r.Lots.ListByReceipt(ctx, receiptID)
		if err != nil {
			return err
		}
		out = receiptToDTO(receipt, lots, movs, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("ingreso", out.Number).Int("entradas", len(out.Movements)).Msg("ingreso completado")
	return out, nil
}

// VoidReceipt anula el ingreso. Si estaba COMPLETADO, solo procede cuando ningún lote fue
// consumido y deja los lotes en cero con SALIDAS compensatorias.
func (uc *ReceiptUseCase) VoidReceipt(ctx context.Context, receiptID, userID string) (*dto.ReceiptResponse, error) {
	if receiptID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ReceiptResponse
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r Repos) error {
		receipt, err := r.Receipts.GetForUpdate(ctx, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		wasCompleted := receipt.IsCompleted()
		if err := receipt.Void(uc.now()); err != nil {
			return err
		}
		movs, err := uc.registry.VoidLots(ctx, r, receipt, wasCompleted, userID)
		if err != nil {
			return err
		}
		if err := r.Receipts.UpdateState(ctx, receipt); err != nil {
			return err
		}
		lots, err := r.Lots.ListByReceipt(ctx, receiptID)
		if err != nil {
			return err
		}
		out = receiptToDTO(receipt, lots, movs, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("ingreso", out.Number).Int("salidas", len(out.Movements)).Msg("ingreso anulado")
	return out, nil
}
