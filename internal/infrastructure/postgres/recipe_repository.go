package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo lectura de recetas.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// GetByID receta con sus líneas y el nombre de cada insumo. nil, nil si no existe.
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	query := `
		SELECT id, id_producto, nombre, rendimiento_batch, created_at
		FROM recetas WHERE id = $1`
	var rc entity.Recipe
	err := r.q.QueryRow(ctx, query, id).Scan(&rc.ID, &rc.ProductID, &rc.Name, &rc.YieldPerBatch, &rc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	lines := `
		SELECT rd.id, rd.id_receta, rd.id_insumo, i.nombre, rd.cantidad_por_unidad, rd.opcional
		FROM receta_detalles rd
		JOIN insumos i ON i.id = rd.id_insumo
		WHERE rd.id_receta = $1
		ORDER BY rd.id`
	rows, err := r.q.Query(ctx, lines, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ln entity.RecipeLine
		if err := rows.Scan(&ln.ID, &ln.RecipeID, &ln.RawMaterialID, &ln.MaterialName, &ln.QuantityPerUnit, &ln.Optional); err != nil {
			return nil, fmt.Errorf("get recipe lines scan: %w", err)
		}
		rc.Lines = append(rc.Lines, ln)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get recipe lines: %w", err)
	}
	return &rc, nil
}
