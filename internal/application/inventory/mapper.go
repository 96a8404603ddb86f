package inventory

import (
	"time"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// LotToDTO convierte un lote a su DTO; los días para vencer se cuentan desde now.
func LotToDTO(l *entity.Lot, now time.Time) dto.LotDTO {
	out := dto.LotDTO{
		ID:                l.ID,
		ReceiptID:         l.ReceiptID,
		RawMaterialID:     l.RawMaterialID,
		QuantityReceived:  l.QuantityReceived,
		QuantityRemaining: l.QuantityRemaining,
		ExpirationDate:    l.ExpirationDate,
		UnitCost:          l.UnitCost,
	}
	if days, ok := l.DaysUntilExpiry(now); ok {
		out.DaysToExpiry = &days
	}
	return out
}

// MaterialMovementToDTO convierte un movimiento de insumo a su DTO.
func MaterialMovementToDTO(m *entity.MaterialMovement) dto.MaterialMovementDTO {
	return dto.MaterialMovementDTO{
		ID:             m.ID,
		Number:         m.Number,
		Direction:      string(m.Direction),
		RawMaterialID:  m.RawMaterialID,
		LotID:          m.LotID,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		UnitCost:       m.UnitCost,
		OriginType:     m.OriginType,
		OriginID:       m.OriginID,
		Reason:         m.Reason,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// ProductMovementToDTO convierte un movimiento de producto terminado a su DTO.
func ProductMovementToDTO(m *entity.ProductMovement) dto.ProductMovementDTO {
	return dto.ProductMovementDTO{
		ID:             m.ID,
		Number:         m.Number,
		Direction:      string(m.Direction),
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		OriginType:     m.OriginType,
		OriginID:       m.OriginID,
		Reason:         m.Reason,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

func receiptToDTO(rc *entity.GoodsReceipt, lots []*entity.Lot, movs []*entity.MaterialMovement, now time.Time) *dto.ReceiptResponse {
	out := &dto.ReceiptResponse{
		ID:        rc.ID,
		Number:    rc.Number,
		State:     string(rc.State),
		Lots:      make([]dto.LotDTO, 0, len(lots)),
		UpdatedAt: rc.UpdatedAt,
	}
	for _, l := range lots {
		out.Lots = append(out.Lots, LotToDTO(l, now))
	}
	for _, m := range movs {
		out.Movements = append(out.Movements, m.Number)
	}
	return out
}
