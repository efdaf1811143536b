package telemetry

import (
	"context"
	"time"
)

// NoopProvider is used when telemetry is disabled
type NoopProvider struct{}

// Initialize does nothing
func (p *NoopProvider) Initialize(_ context.Context) error {
	return nil
}

// Shutdown does nothing
func (p *NoopProvider) Shutdown() {}

// StartSpan returns a span that records nothing
func (p *NoopProvider) StartSpan(ctx context.Context, _ string) (Span, context.Context) {
	return &noopSpan{}, ctx
}

func (p *NoopProvider) IncrementCounter(_ string, _ int64, _ ...string) {}
func (p *NoopProvider) Gauge(_ string, _ float64, _ ...string)          {}
func (p *NoopProvider) Timing(_ string, _ time.Duration, _ ...string)   {}
