package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// RawMaterialRepository lectura del catálogo de insumos (el CRUD vive fuera de este servicio).
type RawMaterialRepository interface {
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.RawMaterial, error)
}
