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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas y sus detalles.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, numero, estado, metodo_pago, total, observaciones, id_user, created_at, fecha_anulacion, anulado_por`

// Create inserta la cabecera. Las líneas se insertan con CreateLine.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Number, string(sale.Status), sale.PaymentMethod, sale.Total,
		nullable(sale.Notes), sale.CreatedBy, sale.CreatedAt, sale.VoidedAt, nullable(sale.VoidedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create sale: %w", domain.ErrConflict)
		}
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de venta.
func (r *SaleRepo) CreateLine(ctx context.Context, line *entity.SaleLine) error {
	query := `
		INSERT INTO venta_detalles (id, id_venta, id_producto, cantidad, precio_unitario, descuento_pct, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.DiscountPct, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("create sale line: %w", err)
	}
	return nil
}

// GetByID venta con sus líneas. nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM ventas WHERE id = $1`
	return r.get(ctx, "get sale", query, id)
}

// GetForUpdate bloquea la cabecera y devuelve la venta con sus líneas.
func (r *SaleRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM ventas WHERE id = $1 FOR UPDATE`
	return r.get(ctx, "get sale for update", query, id)
}

// UpdateStatus persiste el estado y los datos de anulación.
func (r *SaleRepo) UpdateStatus(ctx context.Context, sale *entity.Sale) error {
	query := `UPDATE ventas SET estado = $2, fecha_anulacion = $3, anulado_por = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, sale.ID, string(sale.Status), sale.VoidedAt, nullable(sale.VoidedBy))
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update sale status: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *SaleRepo) get(ctx context.Context, op, query, id string) (*entity.Sale, error) {
	var s entity.Sale
	var status string
	var notes, voidedBy *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Number, &status, &s.PaymentMethod, &s.Total, &notes, &s.CreatedBy,
		&s.CreatedAt, &s.VoidedAt, &voidedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.Status = entity.SaleStatus(status)
	s.Notes = deref(notes)
	s.VoidedBy = deref(voidedBy)

	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.Lines = lines
	return &s, nil
}

func (r *SaleRepo) lines(ctx context.Context, saleID string) ([]entity.SaleLine, error) {
	query := `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario, descuento_pct, subtotal
		FROM venta_detalles WHERE id_venta = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("sale lines: %w", err)
	}
	defer rows.Close()
	out := make([]entity.SaleLine, 0)
	for rows.Next() {
		var ln entity.SaleLine
		if err := rows.Scan(&ln.ID, &ln.SaleID, &ln.ProductID, &ln.Quantity, &ln.UnitPrice, &ln.DiscountPct, &ln.Subtotal); err != nil {
			return nil, fmt.Errorf("sale lines scan: %w", err)
		}
		out = append(out, ln)
	}
	return out, rows.Err()
}
