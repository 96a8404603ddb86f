package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /ventas/registrar.
type RegisterSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"metodo_pago" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Notes         string            `json:"observaciones"`
	UserID        string            `json:"id_user"`
}

// SaleItemRequest línea de venta. PrecioUnitario cero = precio de catálogo.
type SaleItemRequest struct {
	ProductID   string          `json:"id_producto" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	DiscountPct decimal.Decimal `json:"descuento_pct"`
}

// CancelSaleRequest body opcional de POST /ventas/:id/anular.
type CancelSaleRequest struct {
	UserID string `json:"id_user"`
}

// SaleLineDTO línea de venta.
type SaleLineDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"id_producto"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	DiscountPct decimal.Decimal `json:"descuento_pct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id_venta"`
	Number        string          `json:"numero"`
	Status        string          `json:"estado"`
	PaymentMethod string          `json:"metodo_pago"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"observaciones"`
	CreatedBy     string          `json:"id_user"`
	CreatedAt     time.Time       `json:"fecha"`
	VoidedAt      *time.Time      `json:"fecha_anulacion,omitempty"`
	Lines         []SaleLineDTO   `json:"detalles"`
}

// DiscountSuggestionDTO sugerencia de descuento (informativa, nunca se aplica sola).
type DiscountSuggestionDTO struct {
	ProductID      string          `json:"id_producto"`
	Name           string          `json:"nombre"`
	Stock          decimal.Decimal `json:"stock_actual"`
	Price          decimal.Decimal `json:"precio"`
	LastProduction time.Time       `json:"ultima_produccion"`
	AgeDays        int             `json:"dias"`
	DiscountPct    decimal.Decimal `json:"descuento_sugerido_pct"`
	SuggestedPrice decimal.Decimal `json:"precio_sugerido"`
}
