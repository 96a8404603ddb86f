package entity

import (
	"time"

	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/shopspring/decimal"
)

// SaleStatus ciclo de vida de una venta.
type SaleStatus string

const (
	SaleActive SaleStatus = "ACTIVA"
	SaleVoided SaleStatus = "ANULADA"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "EFECTIVO"
	PaymentCard     = "TARJETA"
	PaymentTransfer = "TRANSFERENCIA"
)

// Sale cabecera de venta (tabla ventas).
type Sale struct {
	ID            string
	Number        string // VENTA-YYYYMM-N
	Status        SaleStatus
	PaymentMethod string
	Total         decimal.Decimal
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	VoidedAt      *time.Time
	VoidedBy      string
	Lines         []SaleLine
}

// SaleLine línea de venta (tabla venta_detalles).
type SaleLine struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // 0..100
	Subtotal    decimal.Decimal
}

// Void ACTIVA -> ANULADA. Una venta anulada no puede volver a anularse.
func (s *Sale) Void(userID string, now time.Time) error {
	switch s.Status {
	case SaleActive:
		s.Status = SaleVoided
		s.VoidedAt = &now
		s.VoidedBy = userID
		return nil
	case SaleVoided:
		return domain.ErrAlreadyVoided
	}
	return domain.ErrInvalidTransition
}
