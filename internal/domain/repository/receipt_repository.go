package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// ReceiptRepository puerto de persistencia para ingresos de insumos.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.GoodsReceipt) error
	GetByID(ctx context.Context, id string) (*entity.GoodsReceipt, error)
	GetForUpdate(ctx context.Context, id string) (*entity.GoodsReceipt, error)
	UpdateState(ctx context.Context, receipt *entity.GoodsReceipt) error
}
