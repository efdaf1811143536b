package market

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
)

// observe records timing and error metrics of one provider call and
// reports a failure to the notifier
func (s *Service) observe(ctx context.Context, provider, op, subject string, started time.Time, err error) {
	tags := []string{"provider:" + provider, "op:" + op}
	s.telemetry.Timing(telemetryUpstreamDuration, time.Since(started), tags...)

	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrPriceUnavailable) {
		s.telemetry.IncrementCounter(telemetryPriceUnavailable, 1, tags...)
		s.logger.Info("Price not available", zap.String("symbol", subject))
		return
	}
	if errors.Is(err, context.Canceled) {
		// the caller went away, nothing failed upstream
		return
	}

	s.telemetry.IncrementCounter(telemetryUpstreamErrors, 1, tags...)
	s.logger.Warn("Upstream call failed",
		zap.String("provider", provider),
		zap.String("op", op),
		zap.String("subject", subject),
		zap.Error(err),
	)
	s.publish(ctx, domain.NewUpstreamFailure(provider, op, subject, err, time.Now()))
}

// publish hands data to the notifier without holding up the request
func (s *Service) publish(ctx context.Context, data any) {
	if s.notifier == nil {
		return
	}
	go s.notifier.Notify(context.WithoutCancel(ctx), data)
}
