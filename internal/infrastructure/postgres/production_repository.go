package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo cabeceras de producción.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de producción.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

const productionColumns = `id, numero, id_receta, id_producto, cantidad_batch, cantidad, costo_total, observaciones, id_user, created_at`

// Create inserta la cabecera de una ejecución.
func (r *ProductionRepo) Create(ctx context.Context, run *entity.ProductionRun) error {
	query := `
		INSERT INTO produccion (` + productionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		run.ID, run.Number, run.RecipeID, run.ProductID, run.BatchSize, run.Produced,
		run.TotalCost, nullable(run.Notes), run.CreatedBy, run.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create production: %w", domain.ErrConflict)
		}
		return fmt.Errorf("create production: %w", err)
	}
	return nil
}

// GetByID devuelve nil, nil si la ejecución no existe.
func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.ProductionRun, error) {
	query := `SELECT ` + productionColumns + ` FROM produccion WHERE id = $1`
	run, err := scanProduction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return run, nil
}

// List ejecuciones en un rango de fechas, más recientes primero.
func (r *ProductionRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.ProductionRun, error) {
	query := `SELECT ` + productionColumns + ` FROM produccion WHERE 1 = 1`
	query, args, pos := dateRange(query, nil, 1, "created_at", from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductionRun, 0)
	for rows.Next() {
		run, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("list productions scan: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

// LastProductionDates fecha de la producción más reciente por producto.
func (r *ProductionRepo) LastProductionDates(ctx context.Context, productIDs []string) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id_producto, MAX(created_at)
		FROM produccion
		WHERE id_producto = ANY($1)
		GROUP BY id_producto`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("last production dates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("last production dates scan: %w", err)
		}
		out[id] = at
	}
	return out, rows.Err()
}

func scanProduction(row pgx.Row) (*entity.ProductionRun, error) {
	var run entity.ProductionRun
	var notes *string
	err := row.Scan(
		&run.ID, &run.Number, &run.RecipeID, &run.ProductID, &run.BatchSize, &run.Produced,
		&run.TotalCost, &notes, &run.CreatedBy, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	run.Notes = deref(notes)
	return &run, nil
}
