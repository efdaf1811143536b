package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/api"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/notify"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/telemetry"
	"github.com/ayankousky/market-data-proxy/internal/market"
	"github.com/ayankousky/market-data-proxy/internal/notifier"
	"github.com/ayankousky/market-data-proxy/internal/stream"
)

// App represents the bootstrapped application
type App struct {
	logger    *zap.Logger
	options   *Options
	telemetry telemetry.Provider
	providers market.Providers
	notifier  *notifier.Notifier
	notifiers []NotifierConfig
	redis     *redis.Client
	market    *market.Service
	stream    *stream.Handler
	server    *api.Server
}

// NotifierConfig holds notifier configuration
type NotifierConfig struct {
	Name     string
	Client   notify.Client
	Topic    string
	Strategy notify.Strategy
}

// Start initializes telemetry and serves HTTP until ctx is cancelled
func (a *App) Start(ctx context.Context) error {
	if err := a.telemetry.Initialize(ctx); err != nil {
		a.logger.Warn("Telemetry is disabled", zap.Error(err))
	}
	defer a.telemetry.Shutdown()
	defer a.close()

	for _, n := range a.notifiers {
		a.logger.Info("Notifier subscribed", zap.String("client", n.Name), zap.String("topic", n.Topic))
	}
	a.logger.Info("Starting market data proxy", zap.String("addr", a.options.HTTP.Addr))

	if err := a.server.Run(ctx); err != nil {
		return fmt.Errorf("running http server: %w", err)
	}

	a.logger.Info("Exiting...")
	return nil
}

func (a *App) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
}
