package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/api"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/notify"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers/cnn"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers/fmp"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers/yahoo"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/telemetry"
	"github.com/ayankousky/market-data-proxy/internal/market"
	"github.com/ayankousky/market-data-proxy/internal/notifier"
	"github.com/ayankousky/market-data-proxy/internal/notifier/strategies"
	"github.com/ayankousky/market-data-proxy/internal/stream"
)

// Builder builds the App instance
type Builder struct {
	app *App
	err error
}

// NewBuilder creates a new Builder instance
func NewBuilder() *Builder {
	return &Builder{
		app: &App{},
	}
}

// WithOptionsFetch parses options from the command line and environment
func (b *Builder) WithOptionsFetch(args []string) *Builder {
	if b.err != nil {
		return b
	}

	opts, err := ParseOptions(args)
	if err != nil {
		b.err = fmt.Errorf("parsing options: %w", err)
		return b
	}

	b.app.options = opts
	return b
}

// WithOptions uses already parsed options
func (b *Builder) WithOptions(opts *Options) *Builder {
	if b.err != nil {
		return b
	}
	if opts == nil {
		b.err = fmt.Errorf("options must not be nil")
		return b
	}

	b.app.options = opts
	return b
}

// WithLogger initializes the logger
func (b *Builder) WithLogger() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil {
		b.err = fmt.Errorf("options must be initialized before logger")
		return b
	}

	logger, err := infrastructure.NewLogger(b.app.options.Env, b.app.options.ServiceName)
	if err != nil {
		b.err = fmt.Errorf("creating logger: %w", err)
		return b
	}

	b.app.logger = logger
	return b
}

// WithTelemetry selects the Datadog provider when enabled and a no-op one otherwise
func (b *Builder) WithTelemetry() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil {
		b.err = fmt.Errorf("options and logger must be initialized before telemetry")
		return b
	}

	dd := b.app.options.Telemetry.Datadog
	if !dd.Enabled {
		b.app.telemetry = &telemetry.NoopProvider{}
		return b
	}

	b.app.telemetry = telemetry.NewDatadogProvider(&telemetry.DatadogConfig{
		AgentHost:       dd.AgentHost,
		AgentPort:       dd.AgentPort,
		StatsdPort:      dd.StatsdPort,
		ServiceName:     b.app.options.ServiceName,
		ServiceEnv:      b.app.options.Env,
		Tags:            splitList(dd.Tags),
		EnableTracing:   dd.EnableTracing,
		EnableMetrics:   dd.EnableMetrics,
		EnableProfiling: dd.EnableProfiling,
	}, b.app.logger)
	return b
}

// WithProviders initializes the upstream clients
func (b *Builder) WithProviders() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil {
		b.err = fmt.Errorf("options must be initialized before providers")
		return b
	}

	upstream := b.app.options.Upstream
	httpClient, err := infrastructure.NewHTTPClient(upstream.Timeout, upstream.Proxy)
	if err != nil {
		b.err = fmt.Errorf("creating http client: %w", err)
		return b
	}

	yahooClient := yahoo.NewYahoo(yahoo.Config{
		APIUrl:     upstream.Yahoo.APIUrl,
		UserAgent:  upstream.Yahoo.UserAgent,
		HTTPClient: httpClient,
	})

	b.app.providers = market.Providers{
		Chart: yahooClient,
		Quote: yahooClient,
		Macro: fmp.NewFMP(fmp.Config{
			APIUrl:     upstream.FMP.APIUrl,
			APIKey:     upstream.FMP.APIKey,
			HTTPClient: httpClient,
		}),
		Sentiment: cnn.NewCNN(cnn.Config{
			APIUrl:     upstream.CNN.APIUrl,
			UserAgent:  upstream.CNN.UserAgent,
			HTTPClient: httpClient,
		}),
	}
	return b
}

// WithNotifiers initializes the notification clients and subscribes them to their topics
func (b *Builder) WithNotifiers(ctx context.Context) *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil {
		b.err = fmt.Errorf("options and logger must be initialized before notifiers")
		return b
	}

	opts := b.app.options
	var notifiers []NotifierConfig

	// Initialize Redis notifier if configured
	if opts.Notify.Redis.URL != "" {
		redisClient, err := infrastructure.NewRedisClient(ctx, opts.Notify.Redis.URL, 1)
		if err != nil {
			b.app.logger.Warn("Failed to initialize Redis notifier", zap.Error(err))
		} else {
			b.app.redis = redisClient
			for _, topic := range b.validTopics("redis", opts.Notify.Redis.Topics) {
				notifiers = append(notifiers, NotifierConfig{
					Name:     "redis",
					Client:   notify.NewRedisNotifier(redisClient, fmt.Sprintf("%s:%s", opts.ServiceName, topic)),
					Topic:    string(topic),
					Strategy: structuredStrategy(topic),
				})
			}
		}
	}

	// Initialize Telegram notifier if configured
	if opts.Notify.Telegram.BotToken != "" && opts.Notify.Telegram.ChatID != "" {
		tgNotifier, err := notify.NewTelegramNotifier(notify.TelegramConfig{
			BotToken:        opts.Notify.Telegram.BotToken,
			ChatID:          opts.Notify.Telegram.ChatID,
			IntervalSeconds: opts.Notify.Telegram.Interval,
		})
		if err != nil {
			b.app.logger.Warn("Failed to initialize Telegram notifier", zap.Error(err))
		} else {
			for _, topic := range b.validTopics("telegram", opts.Notify.Telegram.Topics) {
				notifiers = append(notifiers, NotifierConfig{
					Name:     "telegram",
					Client:   tgNotifier,
					Topic:    string(topic),
					Strategy: textStrategy(topic),
				})
			}
		}
	}

	// Initialize console notifier if configured
	if topics := b.validTopics("stdout", opts.Notify.Stdout.Topics); len(topics) > 0 {
		console := notify.NewConsoleNotifier(os.Stdout)
		for _, topic := range topics {
			notifiers = append(notifiers, NotifierConfig{
				Name:     "stdout",
				Client:   console,
				Topic:    string(topic),
				Strategy: textStrategy(topic),
			})
		}
	}

	n := notifier.New(b.app.logger)
	for _, cfg := range notifiers {
		n.Subscribe(cfg.Topic, cfg.Client, cfg.Strategy)
	}

	b.app.notifier = n
	b.app.notifiers = notifiers
	return b
}

// WithMarket initializes the market service
func (b *Builder) WithMarket() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil || b.app.telemetry == nil || b.app.notifier == nil {
		b.err = fmt.Errorf("options, logger, telemetry and notifiers must be initialized before market")
		return b
	}

	svc, err := market.NewService(b.app.providers, b.app.logger,
		market.WithTelemetry(b.app.telemetry),
		market.WithNotifier(b.app.notifier),
		market.WithBasketConcurrency(b.app.options.Upstream.BasketConcurrency),
	)
	if err != nil {
		b.err = fmt.Errorf("creating market service: %w", err)
		return b
	}

	b.app.market = svc
	return b
}

// WithStream initializes the websocket quote stream
func (b *Builder) WithStream() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.market == nil {
		b.err = fmt.Errorf("market must be initialized before stream")
		return b
	}

	opts := b.app.options.Stream
	b.app.stream = stream.NewHandler(stream.Config{
		DefaultInterval: opts.Interval,
		MinInterval:     opts.MinInterval,
		MaxSymbols:      opts.MaxSymbols,
		Window:          opts.Window,
	}, b.app.market, b.app.logger,
		stream.WithNotifier(b.app.notifier),
		stream.WithTelemetry(b.app.telemetry),
	)
	return b
}

// WithServer initializes the HTTP server
func (b *Builder) WithServer() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.market == nil {
		b.err = fmt.Errorf("market must be initialized before server")
		return b
	}

	opts := b.app.options.HTTP
	serverOpts := []api.Option{api.WithTelemetry(b.app.telemetry)}
	if b.app.stream != nil {
		serverOpts = append(serverOpts, api.WithStream(b.app.stream))
	}

	b.app.server = api.NewServer(api.Config{
		Addr:              opts.Addr,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		ShutdownTimeout:   opts.ShutdownTimeout,
		MaxBasket:         opts.MaxBasket,
	}, b.app.market, b.app.logger, serverOpts...)
	return b
}

// Build returns the built App instance
func (b *Builder) Build() (*App, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.app.logger == nil ||
		b.app.options == nil ||
		b.app.telemetry == nil ||
		b.app.market == nil ||
		b.app.server == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}

	return b.app, nil
}

// validTopics splits a comma separated topic list, dropping unknown topics with a warning
func (b *Builder) validTopics(client, raw string) []notifier.Topic {
	var topics []notifier.Topic
	for _, name := range splitList(raw) {
		topic := notifier.Topic(strings.ToUpper(name))
		if err := topic.Validate(); err != nil {
			b.app.logger.Warn("Skipping notifier topic", zap.String("client", client), zap.Error(err))
			continue
		}
		topics = append(topics, topic)
	}
	return topics
}

// structuredStrategy formats events for machine consumers
func structuredStrategy(topic notifier.Topic) notify.Strategy {
	if topic == notifier.AlertTopic {
		return &strategies.UpstreamEventStrategy{}
	}
	return &strategies.QuoteStrategy{}
}

// textStrategy formats events for humans
func textStrategy(topic notifier.Topic) notify.Strategy {
	if topic == notifier.AlertTopic {
		return &strategies.UpstreamAlertStrategy{}
	}
	return &strategies.QuoteTableStrategy{}
}

func splitList(raw string) []string {
	var result []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
