package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo lotes de insumos sobre ingresos_insumos_detalle (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `d.id, d.id_ingreso, d.id_insumo, d.cantidad, d.cantidad_restante,
		d.fecha_vencimiento, d.costo_unitario, d.created_at, d.secuencia`

// Un lote es activo si tiene saldo y su ingreso no está anulado.
const activeLotFilter = `d.cantidad_restante > 0 AND i.estado <> 'ANULADO'`

// Todo bloqueo de lotes usa este orden; anulación y producción no se cruzan.
const lotLockOrder = `ORDER BY d.id_insumo, d.id`

const lotsByReceiptForUpdateSQL = `SELECT ` + lotColumns + `
		FROM ingresos_insumos_detalle d
		WHERE d.id_ingreso = $1
		` + lotLockOrder + `
		FOR UPDATE`

const activeLotsForUpdateSQL = `SELECT ` + lotColumns + `
		FROM ingresos_insumos_detalle d
		JOIN ingresos_insumos i ON i.id = d.id_ingreso
		WHERE d.id_insumo = ANY($1) AND ` + activeLotFilter + `
		` + lotLockOrder + `
		FOR UPDATE OF d`

// Create inserta un lote y deja en lot.Seq el orden de inserción asignado por la base.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	query := `
		INSERT INTO ingresos_insumos_detalle
			(id, id_ingreso, id_insumo, cantidad, cantidad_restante, fecha_vencimiento, costo_unitario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING secuencia`
	err := r.q.QueryRow(ctx, query,
		lot.ID, lot.ReceiptID, lot.RawMaterialID, lot.QuantityReceived, lot.QuantityRemaining,
		lot.ExpirationDate, lot.UnitCost, lot.CreatedAt,
	).Scan(&lot.Seq)
	if err != nil {
		return fmt.Errorf("create lot: %w", err)
	}
	return nil
}

// ListByReceipt lotes de un ingreso en orden de inserción.
func (r *LotRepo) ListByReceipt(ctx context.Context, receiptID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM ingresos_insumos_detalle d
		WHERE d.id_ingreso = $1
		ORDER BY d.secuencia`
	return r.list(ctx, "list lots by receipt", query, receiptID)
}

// ListByReceiptForUpdate lotes del ingreso bloqueados en lotLockOrder.
func (r *LotRepo) ListByReceiptForUpdate(ctx context.Context, receiptID string) ([]*entity.Lot, error) {
	return r.list(ctx, "list lots by receipt for update", lotsByReceiptForUpdateSQL, receiptID)
}

// ListActiveByMaterial lotes activos del insumo en orden FEFO.
func (r *LotRepo) ListActiveByMaterial(ctx context.Context, materialID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM ingresos_insumos_detalle d
		JOIN ingresos_insumos i ON i.id = d.id_ingreso
		WHERE d.id_insumo = $1 AND ` + activeLotFilter + `
		ORDER BY d.fecha_vencimiento ASC NULLS LAST, d.secuencia ASC`
	return r.list(ctx, "list active lots", query, materialID)
}

// ListActiveForUpdate bloquea los lotes activos de los insumos en lotLockOrder.
// El orden FEFO se aplica después en memoria.
func (r *LotRepo) ListActiveForUpdate(ctx context.Context, materialIDs []string) ([]*entity.Lot, error) {
	if len(materialIDs) == 0 {
		return []*entity.Lot{}, nil
	}
	return r.list(ctx, "lock active lots", activeLotsForUpdateSQL, materialIDs)
}

// UpdateRemaining fija el saldo del lote.
func (r *LotRepo) UpdateRemaining(ctx context.Context, lotID string, remaining decimal.Decimal) error {
	query := `UPDATE ingresos_insumos_detalle SET cantidad_restante = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, lotID, remaining)
	if err != nil {
		return fmt.Errorf("update lot remaining: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update lot remaining: lote %s no existe", lotID)
	}
	return nil
}

// SumAvailable stock derivado por insumo. Los insumos sin lotes activos quedan en cero.
func (r *LotRepo) SumAvailable(ctx context.Context, materialIDs []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(materialIDs))
	for _, id := range materialIDs {
		out[id] = decimal.Zero
	}
	if len(materialIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT d.id_insumo, COALESCE(SUM(d.cantidad_restante), 0)
		FROM ingresos_insumos_detalle d
		JOIN ingresos_insumos i ON i.id = d.id_ingreso
		WHERE d.id_insumo = ANY($1) AND ` + activeLotFilter + `
		GROUP BY d.id_insumo`
	rows, err := r.q.Query(ctx, query, materialIDs)
	if err != nil {
		return nil, fmt.Errorf("sum available: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var total decimal.Decimal
		if err := rows.Scan(&id, &total); err != nil {
			return nil, fmt.Errorf("sum available scan: %w", err)
		}
		out[id] = total
	}
	return out, rows.Err()
}

func (r *LotRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	out := make([]*entity.Lot, 0)
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, lot)
	}
	return out, rows.Err()
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.ReceiptID, &l.RawMaterialID, &l.QuantityReceived, &l.QuantityRemaining,
		&l.ExpirationDate, &l.UnitCost, &l.CreatedAt, &l.Seq,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
