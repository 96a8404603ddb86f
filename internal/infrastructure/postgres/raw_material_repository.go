package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo lectura del catálogo de insumos.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador de insumos.
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// GetByID devuelve nil, nil si el insumo no existe.
func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	query := `SELECT id, nombre, unidad, created_at FROM insumos WHERE id = $1`
	var m entity.RawMaterial
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Unit, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// GetByIDs devuelve solo los insumos encontrados, indexados por id.
func (r *RawMaterialRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.RawMaterial, error) {
	out := make(map[string]*entity.RawMaterial, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT id, nombre, unidad, created_at FROM insumos WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get raw materials: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("get raw materials scan: %w", err)
		}
		out[m.ID] = &m
	}
	return out, rows.Err()
}
