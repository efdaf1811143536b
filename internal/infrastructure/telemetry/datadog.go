package telemetry

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"go.uber.org/zap"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// DefaultStatsdPort is the dogstatsd port used when none is configured
const DefaultStatsdPort = "8125"

// DatadogConfig holds configuration for Datadog services
type DatadogConfig struct {
	AgentHost       string
	AgentPort       string
	StatsdPort      string
	ServiceName     string
	ServiceEnv      string
	Tags            []string
	EnableTracing   bool
	EnableMetrics   bool
	EnableProfiling bool
}

// DatadogProvider provides access to DataDog services
type DatadogProvider struct {
	config      *DatadogConfig
	statsd      *statsd.Client
	logger      *zap.Logger
	initialized bool
}

// NewDatadogProvider creates a new DatadogProvider with the given config
func NewDatadogProvider(config *DatadogConfig, logger *zap.Logger) *DatadogProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.StatsdPort == "" {
		config.StatsdPort = DefaultStatsdPort
	}

	return &DatadogProvider{
		config: config,
		logger: logger.With(zap.String("component", "datadog")),
	}
}

// Initialize sets up all configured DataDog services
func (dp *DatadogProvider) Initialize(_ context.Context) error {
	if dp.initialized {
		return nil
	}

	agentAddr := net.JoinHostPort(dp.config.AgentHost, dp.config.AgentPort)

	if dp.config.EnableTracing {
		tracer.Start(
			tracer.WithServiceName(dp.config.ServiceName),
			tracer.WithEnv(dp.config.ServiceEnv),
			tracer.WithRuntimeMetrics(),
			tracer.WithAgentAddr(agentAddr),
		)
	}

	if dp.config.EnableMetrics {
		client, err := statsd.New(
			net.JoinHostPort(dp.config.AgentHost, dp.config.StatsdPort),
			statsd.WithTags(dp.config.Tags),
			statsd.WithNamespace(dp.config.ServiceName+"."),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize statsd client: %w", err)
		}
		dp.statsd = client
	}

	if dp.config.EnableProfiling {
		err := profiler.Start(
			profiler.WithService(dp.config.ServiceName),
			profiler.WithEnv(dp.config.ServiceEnv),
			profiler.WithTags(dp.config.Tags...),
			profiler.WithAgentAddr(agentAddr),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize profiler: %w", err)
		}
	}

	dp.initialized = true
	dp.logger.Info("Datadog telemetry initialized",
		zap.Bool("tracing", dp.config.EnableTracing),
		zap.Bool("metrics", dp.config.EnableMetrics),
		zap.Bool("profiling", dp.config.EnableProfiling),
	)
	return nil
}

// Shutdown stops all DataDog services
func (dp *DatadogProvider) Shutdown() {
	if dp.config.EnableTracing {
		tracer.Stop()
	}

	if dp.statsd != nil {
		if err := dp.statsd.Close(); err != nil {
			dp.logger.Warn("Failed to close statsd client", zap.Error(err))
		}
	}

	if dp.config.EnableProfiling {
		profiler.Stop()
	}
}

// ddSpan is a simple wrapper for DataDog span
type ddSpan struct {
	span tracer.Span
	err  error
}

func (s *ddSpan) SetTag(key string, value any) {
	s.span.SetTag(key, value)
}

func (s *ddSpan) SetError(err error) {
	if err != nil {
		s.err = err
	}
}

func (s *ddSpan) Finish() {
	if s.err != nil {
		s.span.Finish(tracer.WithError(s.err))
		return
	}
	s.span.Finish()
}

// StartSpan starts a new trace span tagged with the component prefix of the operation name,
// e.g. "market" for "market.chart"
func (dp *DatadogProvider) StartSpan(ctx context.Context, operationName string) (Span, context.Context) {
	if !dp.config.EnableTracing {
		return &noopSpan{}, ctx
	}

	span, ctx := tracer.StartSpanFromContext(ctx, operationName)
	component, _, _ := strings.Cut(operationName, ".")
	span.SetTag("component", component)

	return &ddSpan{span: span}, ctx
}

// IncrementCounter increments a counter metric
func (dp *DatadogProvider) IncrementCounter(name string, value int64, tags ...string) {
	if dp.statsd == nil {
		return
	}
	if err := dp.statsd.Count(name, value, tags, 1); err != nil {
		dp.logger.Debug("Failed to increment counter", zap.String("metric", name), zap.Error(err))
	}
}

// Gauge sets a gauge metric
func (dp *DatadogProvider) Gauge(name string, value float64, tags ...string) {
	if dp.statsd == nil {
		return
	}
	if err := dp.statsd.Gauge(name, value, tags, 1); err != nil {
		dp.logger.Debug("Failed to set gauge", zap.String("metric", name), zap.Error(err))
	}
}

// Timing records a timing metric
func (dp *DatadogProvider) Timing(name string, value time.Duration, tags ...string) {
	if dp.statsd == nil {
		return
	}
	if err := dp.statsd.Timing(name, value, tags, 1); err != nil {
		dp.logger.Debug("Failed to record timing", zap.String("metric", name), zap.Error(err))
	}
}
