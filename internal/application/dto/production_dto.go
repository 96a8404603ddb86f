package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidateStockRequest body para POST /produccion/validar-stock.
type ValidateStockRequest struct {
	RecipeID  string          `json:"id_receta" validate:"required,uuid"`
	BatchSize decimal.Decimal `json:"cantidad_batch"`
}

// ExecuteProductionRequest body para POST /produccion/ejecutar.
type ExecuteProductionRequest struct {
	RecipeID  string          `json:"id_receta" validate:"required,uuid"`
	BatchSize decimal.Decimal `json:"cantidad_batch"`
	UserID    string          `json:"id_user" validate:"required"`
	Notes     string          `json:"observaciones"`
}

// IngredientCheckDTO resultado de validación de un ingrediente no opcional.
type IngredientCheckDTO struct {
	RawMaterialID string          `json:"id_insumo"`
	Name          string          `json:"nombre"`
	Required      decimal.Decimal `json:"requerido"`
	Available     decimal.Decimal `json:"disponible"`
	Sufficient    bool            `json:"suficiente"`
}

// StockValidationResponse desglose por ingrediente; no modifica nada.
type StockValidationResponse struct {
	RecipeID    string               `json:"id_receta"`
	BatchSize   decimal.Decimal      `json:"cantidad_batch"`
	Sufficient  bool                 `json:"suficiente"`
	Ingredients []IngredientCheckDTO `json:"ingredientes"`
}

// ProductionResponse resultado de una producción ejecutada.
type ProductionResponse struct {
	Message   string          `json:"mensaje"`
	ID        string          `json:"id_produccion"`
	Number    string          `json:"numero"`
	ProductID string          `json:"id_producto"`
	Produced  decimal.Decimal `json:"cantidad_producida"`
	TotalCost decimal.Decimal `json:"costo_total"`
	UnitCost  decimal.Decimal `json:"costo_unitario"`
	CreatedAt time.Time       `json:"fecha"`
}

// LotConsumptionDTO consumo de un lote dentro de una producción.
type LotConsumptionDTO struct {
	MovementNumber string          `json:"numero_movimiento"`
	LotID          string          `json:"id_lote"`
	RawMaterialID  string          `json:"id_insumo"`
	MaterialName   string          `json:"nombre_insumo"`
	Quantity       decimal.Decimal `json:"cantidad"`
	QuantityBefore decimal.Decimal `json:"cantidad_anterior"`
	QuantityAfter  decimal.Decimal `json:"cantidad_nueva"`
	UnitCost       decimal.Decimal `json:"costo_unitario"`
}

// ProductionTraceResponse trazabilidad completa de una producción.
type ProductionTraceResponse struct {
	ID           string              `json:"id_produccion"`
	Number       string              `json:"numero"`
	RecipeID     string              `json:"id_receta"`
	ProductID    string              `json:"id_producto"`
	BatchSize    decimal.Decimal     `json:"cantidad_batch"`
	Produced     decimal.Decimal     `json:"cantidad_producida"`
	TotalCost    decimal.Decimal     `json:"costo_total"`
	CreatedBy    string              `json:"id_user"`
	CreatedAt    time.Time           `json:"fecha"`
	Consumptions []LotConsumptionDTO `json:"consumos"`
	Credit       *ProductMovementDTO `json:"credito_producto"`
}

// ProductionRunDTO fila del listado de producciones.
type ProductionRunDTO struct {
	ID        string          `json:"id"`
	Number    string          `json:"numero"`
	RecipeID  string          `json:"id_receta"`
	ProductID string          `json:"id_producto"`
	BatchSize decimal.Decimal `json:"cantidad_batch"`
	Produced  decimal.Decimal `json:"cantidad_producida"`
	TotalCost decimal.Decimal `json:"costo_total"`
	CreatedBy string          `json:"id_user"`
	CreatedAt time.Time       `json:"fecha"`
}

// ProductionListResponse lista paginada de producciones.
type ProductionListResponse struct {
	Items []ProductionRunDTO `json:"items"`
	Page  PageResponse       `json:"page"`
}
