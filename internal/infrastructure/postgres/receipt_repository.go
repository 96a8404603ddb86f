package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo cabeceras de ingresos de insumos.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de ingresos.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, numero, id_proveedor, estado, fecha_ingreso, observaciones, id_user, created_at, updated_at`

// Create inserta la cabecera. Un número duplicado devuelve ErrConflict.
func (r *ReceiptRepo) Create(ctx context.Context, rc *entity.GoodsReceipt) error {
	query := `
		INSERT INTO ingresos_insumos (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rc.ID, rc.Number, nullable(rc.SupplierID), string(rc.State), rc.ReceivedAt,
		nullable(rc.Notes), rc.CreatedBy, rc.CreatedAt, rc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create receipt: %w", domain.ErrConflict)
		}
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

// GetByID devuelve nil, nil si el ingreso no existe.
func (r *ReceiptRepo) GetByID(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM ingresos_insumos WHERE id = $1`
	return r.get(ctx, "get receipt", query, id)
}

// GetForUpdate obtiene y bloquea la cabecera.
func (r *ReceiptRepo) GetForUpdate(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM ingresos_insumos WHERE id = $1 FOR UPDATE`
	return r.get(ctx, "get receipt for update", query, id)
}

// UpdateState persiste el estado tras una transición.
func (r *ReceiptRepo) UpdateState(ctx context.Context, rc *entity.GoodsReceipt) error {
	query := `UPDATE ingresos_insumos SET estado = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, rc.ID, string(rc.State), rc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update receipt state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update receipt state: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ReceiptRepo) get(ctx context.Context, op, query, id string) (*entity.GoodsReceipt, error) {
	var rc entity.GoodsReceipt
	var supplier, notes *string
	var state string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rc.ID, &rc.Number, &supplier, &state, &rc.ReceivedAt, &notes, &rc.CreatedBy, &rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rc.SupplierID = deref(supplier)
	rc.Notes = deref(notes)
	rc.State = entity.ReceiptState(state)
	return &rc, nil
}
