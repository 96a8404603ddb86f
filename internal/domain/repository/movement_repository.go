package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// MovementRepository puerto del kardex. Solo inserta y lee: los movimientos nunca se
// actualizan ni se eliminan.
type MovementRepository interface {
	CreateMaterial(ctx context.Context, m *entity.MaterialMovement) error
	CreateProduct(ctx context.Context, m *entity.ProductMovement) error

	// HasLotEntry indica si el lote ya tiene una ENTRADA registrada.
	HasLotEntry(ctx context.Context, lotID string) (bool, error)

	ListMaterialByOrigin(ctx context.Context, originType, originID string) ([]*entity.MaterialMovement, error)
	ListProductByOrigin(ctx context.Context, originType, originID string) ([]*entity.ProductMovement, error)

	ListMaterialKardex(ctx context.Context, materialID string, from, to *time.Time, limit, offset int) ([]*entity.MaterialMovement, error)
	ListProductKardex(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.ProductMovement, error)

	// SumMaterialSigned suma de ENTRADA menos SALIDA del insumo.
	SumMaterialSigned(ctx context.Context, materialID string) (decimal.Decimal, error)
}
