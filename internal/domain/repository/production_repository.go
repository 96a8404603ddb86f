package repository

import (
	"context"
	"time"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// ProductionRepository puerto de persistencia para cabeceras de producción.
type ProductionRepository interface {
	Create(ctx context.Context, run *entity.ProductionRun) error
	GetByID(ctx context.Context, id string) (*entity.ProductionRun, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.ProductionRun, error)
	// LastProductionDates fecha de la producción más reciente por producto.
	LastProductionDates(ctx context.Context, productIDs []string) (map[string]time.Time, error)
}
