package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest body para POST /ingresos.
// Estado vacío = PENDIENTE (los lotes quedan inertes hasta completar el ingreso).
type CreateReceiptRequest struct {
	SupplierID string               `json:"id_proveedor" validate:"omitempty,uuid"`
	State      string               `json:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADO"`
	ReceivedAt *time.Time           `json:"fecha_ingreso,omitempty"`
	UserID     string               `json:"id_user" validate:"required"`
	Notes      string               `json:"observaciones"`
	Lines      []ReceiptLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ReceiptLineRequest una línea del ingreso = un lote.
type ReceiptLineRequest struct {
	RawMaterialID  string          `json:"id_insumo" validate:"required,uuid"`
	Quantity       decimal.Decimal `json:"cantidad"`
	ExpirationDate *time.Time      `json:"fecha_vencimiento,omitempty"`
	UnitCost       decimal.Decimal `json:"costo_unitario"`
}

// ReceiptActionRequest body para completar o anular un ingreso.
type ReceiptActionRequest struct {
	UserID string `json:"id_user" validate:"required"`
}

// ReceiptResponse salida de un ingreso con sus lotes.
type ReceiptResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"numero"`
	State     string    `json:"estado"`
	Lots      []LotDTO  `json:"lotes"`
	Movements []string  `json:"movimientos,omitempty"` // números de kardex generados
	UpdatedAt time.Time `json:"updated_at"`
}

// LotDTO lote de insumo.
type LotDTO struct {
	ID                string          `json:"id"`
	ReceiptID         string          `json:"id_ingreso"`
	RawMaterialID     string          `json:"id_insumo"`
	QuantityReceived  decimal.Decimal `json:"cantidad_recibida"`
	QuantityRemaining decimal.Decimal `json:"cantidad_restante"`
	ExpirationDate    *time.Time      `json:"fecha_vencimiento"`
	DaysToExpiry      *int            `json:"dias_para_vencer,omitempty"` // nil si no vence
	UnitCost          decimal.Decimal `json:"costo_unitario"`
}

// LotPreviewResponse orden FEFO de los lotes activos de un insumo.
type LotPreviewResponse struct {
	RawMaterialID string          `json:"id_insumo"`
	Available     decimal.Decimal `json:"disponible"`
	Lots          []LotDTO        `json:"lotes"`
}

// MaterialMovementDTO entrada del kardex de insumos.
type MaterialMovementDTO struct {
	ID             string          `json:"id"`
	Number         string          `json:"numero"`
	Direction      string          `json:"tipo"`
	RawMaterialID  string          `json:"id_insumo"`
	LotID          string          `json:"id_lote,omitempty"`
	Quantity       decimal.Decimal `json:"cantidad"`
	QuantityBefore decimal.Decimal `json:"cantidad_anterior"`
	QuantityAfter  decimal.Decimal `json:"cantidad_nueva"`
	UnitCost       decimal.Decimal `json:"costo_unitario"`
	OriginType     string          `json:"documento_tipo"`
	OriginID       string          `json:"documento_id"`
	Reason         string          `json:"motivo"`
	CreatedBy      string          `json:"id_user"`
	CreatedAt      time.Time       `json:"fecha"`
}

// ProductMovementDTO entrada del kardex de productos terminados.
type ProductMovementDTO struct {
	ID             string          `json:"id"`
	Number         string          `json:"numero"`
	Direction      string          `json:"tipo"`
	ProductID      string          `json:"id_producto"`
	Quantity       decimal.Decimal `json:"cantidad"`
	QuantityBefore decimal.Decimal `json:"cantidad_anterior"`
	QuantityAfter  decimal.Decimal `json:"cantidad_nueva"`
	OriginType     string          `json:"documento_tipo"`
	OriginID       string          `json:"documento_id"`
	Reason         string          `json:"motivo"`
	CreatedBy      string          `json:"id_user"`
	CreatedAt      time.Time       `json:"fecha"`
}

// KardexFilter filtros de consulta del kardex.
type KardexFilter struct {
	From *time.Time
	To   *time.Time
	PageRequest
}

// BalanceCheckResponse conciliación entre lotes y kardex de un insumo.
type BalanceCheckResponse struct {
	RawMaterialID string          `json:"id_insumo"`
	LotsTotal     decimal.Decimal `json:"total_lotes"`
	LedgerTotal   decimal.Decimal `json:"total_kardex"`
	Difference    decimal.Decimal `json:"diferencia"`
	Consistent    bool            `json:"consistente"`
}

// MaterialKardexResponse lista paginada del kardex de un insumo.
type MaterialKardexResponse struct {
	Items []MaterialMovementDTO `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ProductKardexResponse lista paginada del kardex de un producto terminado.
type ProductKardexResponse struct {
	Items []ProductMovementDTO `json:"items"`
	Page  PageResponse         `json:"page"`
}
