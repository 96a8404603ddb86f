package repository

import "context"

// SequenceRepository contador atómico por (prefijo, periodo YYYYMM).
// Next incrementa y devuelve el nuevo valor; la fila queda bloqueada hasta el fin de la transacción.
type SequenceRepository interface {
	Next(ctx context.Context, prefix, period string) (int64, error)
}
