package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlreadyVoided     = errors.New("el documento ya está anulado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrExecutionFailed   = errors.New("falló la ejecución, todos los cambios fueron revertidos")
)

// StockShortage detalle de un insumo o producto sin stock suficiente.
type StockShortage struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Required  decimal.Decimal `json:"requerido"`
	Available decimal.Decimal `json:"disponible"`
}

// Missing cantidad que falta para cubrir el requerimiento.
func (s StockShortage) Missing() decimal.Decimal {
	return s.Required.Sub(s.Available)
}

// InsufficientStockError falla de validación previa a cualquier escritura.
// errors.Is(err, ErrInsufficientStock) es verdadero.
type InsufficientStockError struct {
	Items []StockShortage
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		label := it.Name
		if label == "" {
			label = it.ID
		}
		names = append(names, fmt.Sprintf("%s (requerido %s, disponible %s, faltan %s)", label, it.Required.String(), it.Available.String(), it.Missing().String()))
	}
	return ErrInsufficientStock.Error() + ": " + strings.Join(names, "; ")
}

// Is permite comparar con ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ExecutionError envuelve cualquier falla durante la secuencia de escrituras.
// La transacción ya fue revertida cuando el llamador la recibe.
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrExecutionFailed.Error(), e.Err)
}

// Is permite comparar con ErrExecutionFailed.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecutionFailed
}

func (e *ExecutionError) Unwrap() error { return e.Err }
