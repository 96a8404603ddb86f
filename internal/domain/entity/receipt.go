package entity

import (
	"time"

	"github.com/jhoicas/panaderia-api/internal/domain"
)

// ReceiptState estado del ingreso de insumos.
type ReceiptState string

const (
	ReceiptPending   ReceiptState = "PENDIENTE"
	ReceiptCompleted ReceiptState = "COMPLETADO"
	ReceiptVoided    ReceiptState = "ANULADO"
)

// GoodsReceipt cabecera de un ingreso de insumos (tabla ingresos_insumos).
// Solo los ingresos COMPLETADO activan sus lotes.
type GoodsReceipt struct {
	ID         string
	Number     string
	SupplierID string
	State      ReceiptState
	ReceivedAt time.Time
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsCompleted indica si los lotes del ingreso están activos.
func (r *GoodsReceipt) IsCompleted() bool { return r.State == ReceiptCompleted }

// Complete PENDIENTE -> COMPLETADO.
func (r *GoodsReceipt) Complete(now time.Time) error {
	if r.State != ReceiptPending {
		return domain.ErrInvalidTransition
	}
	r.State = ReceiptCompleted
	r.UpdatedAt = now
	return nil
}

// Void PENDIENTE|COMPLETADO -> ANULADO.
func (r *GoodsReceipt) Void(now time.Time) error {
	switch r.State {
	case ReceiptPending, ReceiptCompleted:
		r.State = ReceiptVoided
		r.UpdatedAt = now
		return nil
	case ReceiptVoided:
		return domain.ErrAlreadyVoided
	}
	return domain.ErrInvalidTransition
}
