package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// RecipeRepository lectura de recetas con sus líneas (join explícito con insumos).
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
}
