package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas (cabecera + detalles).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateLine(ctx context.Context, line *entity.SaleLine) error
	// GetByID devuelve la venta con sus líneas.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera y devuelve la venta con sus líneas.
	GetForUpdate(ctx context.Context, id string) (*entity.Sale, error)
	UpdateStatus(ctx context.Context, sale *entity.Sale) error
}
