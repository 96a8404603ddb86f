package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/production"
)

var _ production.TraceCache = (*TraceCache)(nil)

const traceKeyPrefix = "produccion:traza:"

// TraceCache guarda en Redis la trazabilidad de producciones ya confirmadas.
type TraceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTraceCache construye la caché. ttl <= 0 deja las claves sin expiración.
func NewTraceCache(client *redis.Client, ttl time.Duration) *TraceCache {
	return &TraceCache{client: client, ttl: ttl}
}

func traceKey(productionID string) string {
	return traceKeyPrefix + productionID
}

// GetTrace devuelve la trazabilidad cacheada; ok=false si no existe.
func (c *TraceCache) GetTrace(ctx context.Context, productionID string) (*dto.ProductionTraceResponse, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, traceKey(productionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get trace: %w", err)
	}
	var trace dto.ProductionTraceResponse
	if err := json.Unmarshal(raw, &trace); err != nil {
		// Entrada corrupta: se descarta y se recalcula.
		_ = c.client.Del(ctx, traceKey(productionID)).Err()
		return nil, false, nil
	}
	return &trace, true, nil
}

// SetTrace serializa y guarda la trazabilidad.
func (c *TraceCache) SetTrace(ctx context.Context, trace *dto.ProductionTraceResponse) error {
	if c == nil || c.client == nil || trace == nil {
		return nil
	}
	raw, err := json.Marshal(trace)
	if err != nil {
		return fmt.Errorf("cache: encode trace: %w", err)
	}
	if err := c.client.Set(ctx, traceKey(trace.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set trace: %w", err)
	}
	return nil
}
