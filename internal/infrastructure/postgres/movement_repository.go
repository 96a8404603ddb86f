package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo kardex de insumos y de productos terminados. Solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const materialMovementColumns = `id, numero, tipo, id_insumo, id_lote, cantidad, cantidad_anterior, cantidad_nueva,
		costo_unitario, documento_tipo, documento_id, motivo, id_user, created_at`

const productMovementColumns = `id, numero, tipo, id_producto, cantidad, cantidad_anterior, cantidad_nueva,
		documento_tipo, documento_id, motivo, id_user, created_at`

// CreateMaterial persiste un movimiento de insumo.
func (r *MovementRepo) CreateMaterial(ctx context.Context, m *entity.MaterialMovement) error {
	query := `
		INSERT INTO movimiento_insumos (` + materialMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Number, string(m.Direction), m.RawMaterialID, nullable(m.LotID),
		m.Quantity, m.QuantityBefore, m.QuantityAfter, m.UnitCost,
		m.OriginType, m.OriginID, nullable(m.Reason), m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create material movement: %w", err)
	}
	return nil
}

// CreateProduct persiste un movimiento de producto terminado.
func (r *MovementRepo) CreateProduct(ctx context.Context, m *entity.ProductMovement) error {
	query := `
		INSERT INTO movimiento_productos_terminados (` + productMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Number, string(m.Direction), m.ProductID,
		m.Quantity, m.QuantityBefore, m.QuantityAfter,
		m.OriginType, m.OriginID, nullable(m.Reason), m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product movement: %w", err)
	}
	return nil
}

// HasLotEntry indica si el lote ya tiene su ENTRADA en el kardex.
func (r *MovementRepo) HasLotEntry(ctx context.Context, lotID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movimiento_insumos WHERE id_lote = $1 AND tipo = 'ENTRADA')`
	var ok bool
	if err := r.q.QueryRow(ctx, query, lotID).Scan(&ok); err != nil {
		return false, fmt.Errorf("has lot entry: %w", err)
	}
	return ok, nil
}

// ListMaterialByOrigin movimientos de insumos de un documento, en orden de registro.
func (r *MovementRepo) ListMaterialByOrigin(ctx context.Context, originType, originID string) ([]*entity.MaterialMovement, error) {
	query := `SELECT ` + materialMovementColumns + `
		FROM movimiento_insumos
		WHERE documento_tipo = $1 AND documento_id = $2
		ORDER BY created_at, numero`
	return r.listMaterial(ctx, "list material movements by origin", query, originType, originID)
}

// ListProductByOrigin movimientos de productos de un documento, en orden de registro.
func (r *MovementRepo) ListProductByOrigin(ctx context.Context, originType, originID string) ([]*entity.ProductMovement, error) {
	query := `SELECT ` + productMovementColumns + `
		FROM movimiento_productos_terminados
		WHERE documento_tipo = $1 AND documento_id = $2
		ORDER BY created_at, numero`
	return r.listProduct(ctx, "list product movements by origin", query, originType, originID)
}

// ListMaterialKardex kardex de un insumo en un rango de fechas, más recientes primero.
func (r *MovementRepo) ListMaterialKardex(ctx context.Context, materialID string, from, to *time.Time, limit, offset int) ([]*entity.MaterialMovement, error) {
	query := `SELECT ` + materialMovementColumns + ` FROM movimiento_insumos WHERE id_insumo = $1`
	args := []any{materialID}
	query, args, pos := dateRange(query, args, 2, "created_at", from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC, numero DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.listMaterial(ctx, "list material kardex", query, args...)
}

// ListProductKardex kardex de un producto en un rango de fechas, más recientes primero.
func (r *MovementRepo) ListProductKardex(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.ProductMovement, error) {
	query := `SELECT ` + productMovementColumns + ` FROM movimiento_productos_terminados WHERE id_producto = $1`
	args := []any{productID}
	query, args, pos := dateRange(query, args, 2, "created_at", from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC, numero DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.listProduct(ctx, "list product kardex", query, args...)
}

// SumMaterialSigned ENTRADA menos SALIDA del insumo.
func (r *MovementRepo) SumMaterialSigned(ctx context.Context, materialID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'ENTRADA' THEN cantidad ELSE -cantidad END), 0)
		FROM movimiento_insumos WHERE id_insumo = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, materialID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum material movements: %w", err)
	}
	return total, nil
}

func (r *MovementRepo) listMaterial(ctx context.Context, op, query string, args ...any) ([]*entity.MaterialMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.MaterialMovement, 0)
	for rows.Next() {
		m, err := scanMaterialMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MovementRepo) listProduct(ctx context.Context, op, query string, args ...any) ([]*entity.ProductMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.ProductMovement, 0)
	for rows.Next() {
		m, err := scanProductMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMaterialMovement(row pgx.Row) (*entity.MaterialMovement, error) {
	var m entity.MaterialMovement
	var dir string
	var lotID, reason *string
	err := row.Scan(
		&m.ID, &m.Number, &dir, &m.RawMaterialID, &lotID, &m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
		&m.UnitCost, &m.OriginType, &m.OriginID, &reason, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Direction = entity.Direction(dir)
	m.LotID = deref(lotID)
	m.Reason = deref(reason)
	return &m, nil
}

func scanProductMovement(row pgx.Row) (*entity.ProductMovement, error) {
	var m entity.ProductMovement
	var dir string
	var reason *string
	err := row.Scan(
		&m.ID, &m.Number, &dir, &m.ProductID, &m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
		&m.OriginType, &m.OriginID, &reason, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Direction = entity.Direction(dir)
	m.Reason = deref(reason)
	return &m, nil
}
