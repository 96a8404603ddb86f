package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contadores de documentos por (prefijo, periodo).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de secuencias.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa atómicamente el contador. El upsert deja la fila bloqueada hasta el
// fin de la transacción, así dos transacciones concurrentes nunca obtienen el mismo valor.
func (r *SequenceRepo) Next(ctx context.Context, prefix, period string) (int64, error) {
	query := `
		INSERT INTO secuencias_documento (prefijo, periodo, ultimo)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefijo, periodo)
		DO UPDATE SET ultimo = secuencias_documento.ultimo + 1
		RETURNING ultimo`
	var n int64
	if err := r.q.QueryRow(ctx, query, prefix, period).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s-%s: %w", prefix, period, err)
	}
	return n, nil
}
