package production

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
)

// TraceCache caché de trazabilidades. Una producción confirmada no cambia, así que no hay invalidación.
type TraceCache interface {
	GetTrace(ctx context.Context, productionID string) (*dto.ProductionTraceResponse, bool, error)
	SetTrace(ctx context.Context, trace *dto.ProductionTraceResponse) error
}

// noCache se usa cuando no hay Redis configurado.
type noCache struct{}

func (noCache) GetTrace(context.Context, string) (*dto.ProductionTraceResponse, bool, error) {
	return nil, false, nil
}

func (noCache) SetTrace(context.Context, *dto.ProductionTraceResponse) error { return nil }
