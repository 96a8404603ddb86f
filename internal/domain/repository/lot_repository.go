package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes de insumos.
// "Activo" = QuantityRemaining > 0 y el ingreso dueño no está ANULADO.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	ListByReceipt(ctx context.Context, receiptID string) ([]*entity.Lot, error)
	// ListByReceiptForUpdate bloquea los lotes del ingreso en orden (insumo, id), igual que ListActiveForUpdate.
	ListByReceiptForUpdate(ctx context.Context, receiptID string) ([]*entity.Lot, error)
	// ListActiveByMaterial lotes activos en orden FEFO (vencimiento ASC NULLS LAST, orden de inserción).
	ListActiveByMaterial(ctx context.Context, materialID string) ([]*entity.Lot, error)
	// ListActiveForUpdate bloquea (SELECT FOR UPDATE) los lotes activos de los insumos,
	// adquiriendo los bloqueos en orden estable (insumo, id).
	ListActiveForUpdate(ctx context.Context, materialIDs []string) ([]*entity.Lot, error)
	UpdateRemaining(ctx context.Context, lotID string, remaining decimal.Decimal) error
	// SumAvailable stock derivado por insumo; los insumos sin lotes devuelven cero.
	SumAvailable(ctx context.Context, materialIDs []string) (map[string]decimal.Decimal, error)
}
