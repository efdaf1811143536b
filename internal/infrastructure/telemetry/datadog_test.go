package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDatadogProvider(t *testing.T) {
	config := &DatadogConfig{
		AgentHost:   "localhost",
		AgentPort:   "8126",
		ServiceName: "market-data-proxy",
		ServiceEnv:  "test",
	}

	provider := NewDatadogProvider(config, nil)

	require.NotNil(t, provider)
	assert.Equal(t, config, provider.config)
	assert.Equal(t, DefaultStatsdPort, provider.config.StatsdPort)
	assert.NotNil(t, provider.logger)
	assert.False(t, provider.initialized)
	assert.Nil(t, provider.statsd)
}

func TestInitializeAndShutdown(t *testing.T) {
	tests := []struct {
		name   string
		config *DatadogConfig
	}{
		{
			name: "with nothing enabled",
			config: &DatadogConfig{
				AgentHost:   "localhost",
				AgentPort:   "8126",
				ServiceName: "market-data-proxy",
				ServiceEnv:  "test",
			},
		},
		{
			name: "with only tracing enabled",
			config: &DatadogConfig{
				AgentHost:     "localhost",
				AgentPort:     "8126",
				ServiceName:   "market-data-proxy",
				ServiceEnv:    "test",
				EnableTracing: true,
			},
		},
		{
			name: "with only metrics enabled",
			config: &DatadogConfig{
				AgentHost:     "localhost",
				AgentPort:     "8126",
				ServiceName:   "market-data-proxy",
				ServiceEnv:    "test",
				EnableMetrics: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewDatadogProvider(tt.config, zap.NewNop())

			require.NoError(t, provider.Initialize(context.Background()))
			assert.True(t, provider.initialized)

			// second initialization is a no-op
			require.NoError(t, provider.Initialize(context.Background()))

			assert.NotPanics(t, provider.Shutdown)
		})
	}
}

func TestStartSpan(t *testing.T) {
	tests := []struct {
		name          string
		enableTracing bool
	}{
		{name: "tracing enabled", enableTracing: true},
		{name: "tracing disabled", enableTracing: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewDatadogProvider(&DatadogConfig{
				AgentHost:     "localhost",
				AgentPort:     "8126",
				ServiceName:   "market-data-proxy",
				EnableTracing: tt.enableTracing,
			}, zap.NewNop())
			provider.initialized = true

			span, ctx := provider.StartSpan(context.Background(), "market.chart")
			require.NotNil(t, ctx)

			if tt.enableTracing {
				assert.IsType(t, &ddSpan{}, span)
			} else {
				assert.IsType(t, &noopSpan{}, span)
			}

			assert.NotPanics(t, func() {
				span.SetTag("ticker", "AAPL")
				span.SetError(nil)
				span.SetError(errors.New("boom"))
				span.Finish()
			})
		})
	}
}

func TestMetricsWithoutClient(t *testing.T) {
	tests := []struct {
		name          string
		enableMetrics bool
	}{
		{name: "metrics enabled but not initialized", enableMetrics: true},
		{name: "metrics disabled", enableMetrics: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewDatadogProvider(&DatadogConfig{EnableMetrics: tt.enableMetrics}, zap.NewNop())
			provider.initialized = true

			assert.NotPanics(t, func() {
				provider.IncrementCounter("upstream.errors", 1, "provider:yahoo")
				provider.Gauge("stream.clients", 3)
				provider.Timing("upstream.duration", 100*time.Millisecond, "provider:fmp")
			})
		})
	}
}

func TestNoopProvider(t *testing.T) {
	var p Provider = &NoopProvider{}

	require.NoError(t, p.Initialize(context.Background()))

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	span, got := p.StartSpan(ctx, "market.price")
	assert.Equal(t, ctx, got)
	assert.IsType(t, &noopSpan{}, span)

	assert.NotPanics(t, func() {
		span.SetError(errors.New("ignored"))
		span.Finish()
		p.IncrementCounter("c", 1)
		p.Gauge("g", 1)
		p.Timing("t", time.Second)
		p.Shutdown()
	})
}
