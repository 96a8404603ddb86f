package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para que los repos funcionen con o sin transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullable convierte "" en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deref convierte NULL en "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dateRange agrega filtros opcionales de fecha sobre column a partir del placeholder pos.
func dateRange(query string, args []any, pos int, column string, from, to *time.Time) (string, []any, int) {
	if from != nil {
		query += fmt.Sprintf(" AND %s >= $%d", column, pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND %s <= $%d", column, pos)
		args = append(args, *to)
		pos++
	}
	return query, args, pos
}
