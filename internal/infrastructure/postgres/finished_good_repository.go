package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.FinishedGoodRepository = (*FinishedGoodRepo)(nil)

// FinishedGoodRepo contador de stock de productos terminados (tabla productos).
type FinishedGoodRepo struct {
	q Querier
}

// NewFinishedGoodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinishedGoodRepository(q Querier) *FinishedGoodRepo {
	return &FinishedGoodRepo{q: q}
}

const goodColumns = `id, nombre, precio, costo_unitario, stock_actual, updated_at`

// GetByID devuelve nil, nil si el producto no existe.
func (r *FinishedGoodRepo) GetByID(ctx context.Context, id string) (*entity.FinishedGood, error) {
	query := `SELECT ` + goodColumns + ` FROM productos WHERE id = $1`
	g, err := scanGood(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finished good: %w", err)
	}
	return g, nil
}

// GetByIDs productos encontrados, indexados por id.
func (r *FinishedGoodRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.FinishedGood, error) {
	query := `SELECT ` + goodColumns + ` FROM productos WHERE id = ANY($1)`
	return r.byIDs(ctx, "get finished goods", query, ids)
}

// GetForUpdate obtiene y bloquea los productos (SELECT FOR UPDATE) en orden de id.
func (r *FinishedGoodRepo) GetForUpdate(ctx context.Context, ids []string) (map[string]*entity.FinishedGood, error) {
	query := `SELECT ` + goodColumns + ` FROM productos WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	return r.byIDs(ctx, "get finished goods for update", query, ids)
}

// UpdateStock fija el stock actual.
func (r *FinishedGoodRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	query := `UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, "update finished good stock", query, id, stock)
}

// UpdateStockAndCost fija stock y costo promedio ponderado.
func (r *FinishedGoodRepo) UpdateStockAndCost(ctx context.Context, id string, stock, unitCost decimal.Decimal) error {
	query := `UPDATE productos SET stock_actual = $2, costo_unitario = $3, updated_at = now() WHERE id = $1`
	return r.exec(ctx, "update finished good stock and cost", query, id, stock, unitCost)
}

// ListAvailable productos con stock, por nombre.
func (r *FinishedGoodRepo) ListAvailable(ctx context.Context) ([]*entity.FinishedGood, error) {
	query := `SELECT ` + goodColumns + ` FROM productos WHERE stock_actual > 0 ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list available goods: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.FinishedGood, 0)
	for rows.Next() {
		g, err := scanGood(rows)
		if err != nil {
			return nil, fmt.Errorf("list available goods scan: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *FinishedGoodRepo) byIDs(ctx context.Context, op, query string, ids []string) (map[string]*entity.FinishedGood, error) {
	out := make(map[string]*entity.FinishedGood, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGood(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out[g.ID] = g
	}
	return out, rows.Err()
}

func (r *FinishedGoodRepo) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

func scanGood(row pgx.Row) (*entity.FinishedGood, error) {
	var g entity.FinishedGood
	if err := row.Scan(&g.ID, &g.Name, &g.Price, &g.UnitCost, &g.StockActual, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
