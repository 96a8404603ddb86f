package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/inventory"
)

// MaterialMovementInput datos de un movimiento de kardex de insumos.
type MaterialMovementInput struct {
	Direction      entity.Direction
	RawMaterialID  string
	LotID          string
	Quantity       decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	UnitCost       decimal.Decimal
	OriginType     string
	OriginID       string
	Reason         string
	UserID         string
}

// ProductMovementInput datos de un movimiento de kardex de productos terminados.
type ProductMovementInput struct {
	Direction      entity.Direction
	ProductID      string
	Quantity       decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	OriginType     string
	OriginID       string
	Reason         string
	UserID         string
}

// MovementLedger escribe en los kardex de insumos y productos terminados.
// No abre transacciones: siempre recibe los repos de la tx del llamador.
type MovementLedger struct {
	now func() time.Time
}

// NewMovementLedger construye el ledger con el reloj del sistema.
func NewMovementLedger() *MovementLedger {
	return &MovementLedger{now: time.Now}
}

// WithClock reemplaza el reloj (pruebas).
func (l *MovementLedger) WithClock(now func() time.Time) *MovementLedger {
	l.now = now
	return l
}

// RecordMaterial valida, numera (MOV-YYYYMM-NNNNN) e inserta un movimiento de insumo.
func (l *MovementLedger) RecordMaterial(ctx context.Context, r Repos, in MaterialMovementInput) (*entity.MaterialMovement, error) {
	if in.RawMaterialID == "" || in.OriginType == "" || in.OriginID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := checkSnapshot(in.Direction, in.Quantity, in.QuantityBefore, in.QuantityAfter); err != nil {
		return nil, err
	}
	now := l.now()
	number, err := nextNumber(ctx, r, inventory.PrefixMaterialMovement, now)
	if err != nil {
		return nil, err
	}
	mov := &entity.MaterialMovement{
		ID:             uuid.New().String(),
		Number:         number,
		Direction:      in.Direction,
		RawMaterialID:  in.RawMaterialID,
		LotID:          in.LotID,
		Quantity:       in.Quantity,
		QuantityBefore: in.QuantityBefore,
		QuantityAfter:  in.QuantityAfter,
		UnitCost:       in.UnitCost,
		OriginType:     in.OriginType,
		OriginID:       in.OriginID,
		Reason:         in.Reason,
		CreatedBy:      in.UserID,
		CreatedAt:      now,
	}
	if err := r.Movements.CreateMaterial(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordProduct valida, numera (MPT-YYYYMM-NNNNN) e inserta un movimiento de producto terminado.
func (l *MovementLedger) RecordProduct(ctx context.Context, r Repos, in ProductMovementInput) (*entity.ProductMovement, error) {
	if in.ProductID == "" || in.OriginType == "" || in.OriginID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := checkSnapshot(in.Direction, in.Quantity, in.QuantityBefore, in.QuantityAfter); err != nil {
		return nil, err
	}
	now := l.now()
	number, err := nextNumber(ctx, r, inventory.PrefixProductMovement, now)
	if err != nil {
		return nil, err
	}
	mov := &entity.ProductMovement{
		ID:             uuid.New().String(),
		Number:         number,
		Direction:      in.Direction,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		QuantityBefore: in.QuantityBefore,
		QuantityAfter:  in.QuantityAfter,
		OriginType:     in.OriginType,
		OriginID:       in.OriginID,
		Reason:         in.Reason,
		CreatedBy:      in.UserID,
		CreatedAt:      now,
	}
	if err := r.Movements.CreateProduct(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// NextDocumentNumber número de documento sin relleno (PROD-YYYYMM-N, VENTA-YYYYMM-N, ING-YYYYMM-N).
func NextDocumentNumber(ctx context.Context, r Repos, prefix string, now time.Time) (string, error) {
	period := inventory.Period(now)
	seq, err := r.Sequences.Next(ctx, prefix, period)
	if err != nil {
		return "", fmt.Errorf("secuencia %s: %w", prefix, err)
	}
	return inventory.DocumentNumber(prefix, period, seq), nil
}

func nextNumber(ctx context.Context, r Repos, prefix string, now time.Time) (string, error) {
	period := inventory.Period(now)
	seq, err := r.Sequences.Next(ctx, prefix, period)
	if err != nil {
		return "", fmt.Errorf("secuencia %s: %w", prefix, err)
	}
	return inventory.MovementNumber(prefix, period, seq), nil
}

// checkSnapshot cantidad > 0, after = before ± qty según dirección y after >= 0.
func checkSnapshot(dir entity.Direction, qty, before, after decimal.Decimal) error {
	if dir != entity.DirectionIn && dir != entity.DirectionOut {
		return domain.ErrInvalidInput
	}
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !before.Add(dir.Signed(qty)).Equal(after) {
		return domain.ErrInvalidInput
	}
	if after.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
