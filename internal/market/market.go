// Package market orchestrates the upstream providers behind the proxy endpoints
package market

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/telemetry"
)

//go:generate moq --out mocks/providers.go --pkg mocks --with-resets --skip-ensure . ChartProvider QuoteProvider MacroProvider SentimentProvider Notifier

// DefaultBasketConcurrency bounds the parallel quote fetches of one basket
const DefaultBasketConcurrency = 8

// ChartProvider returns raw historical chart documents
type ChartProvider interface {
	GetName() string
	FetchChart(ctx context.Context, q domain.ChartQuery) (json.RawMessage, error)
}

// QuoteProvider returns the latest price of a symbol
type QuoteProvider interface {
	GetName() string
	FetchQuote(ctx context.Context, symbol string) (domain.Quote, error)
}

// MacroProvider returns macroeconomic indicators
type MacroProvider interface {
	GetName() string
	FetchMacro(ctx context.Context) (domain.MacroSnapshot, error)
}

// SentimentProvider returns the fear & greed index
type SentimentProvider interface {
	GetName() string
	FetchFearGreed(ctx context.Context) (domain.FearGreed, error)
}

// Notifier receives quotes and upstream failures
type Notifier interface {
	Notify(ctx context.Context, data any)
}

// Providers groups the upstream clients the service depends on
type Providers struct {
	Chart     ChartProvider
	Quote     QuoteProvider
	Macro     MacroProvider
	Sentiment SentimentProvider
}

func (p Providers) validate() error {
	var errs []error
	if p.Chart == nil {
		errs = append(errs, errors.New("chart provider is required"))
	}
	if p.Quote == nil {
		errs = append(errs, errors.New("quote provider is required"))
	}
	if p.Macro == nil {
		errs = append(errs, errors.New("macro provider is required"))
	}
	if p.Sentiment == nil {
		errs = append(errs, errors.New("sentiment provider is required"))
	}
	return errors.Join(errs...)
}

// Service serves market data from upstream providers
type Service struct {
	providers         Providers
	telemetry         telemetry.Provider
	notifier          Notifier
	logger            *zap.Logger
	basketConcurrency int
}

// Option configures a Service
type Option func(*Service)

// WithTelemetry records spans and metrics for every upstream call
func WithTelemetry(tp telemetry.Provider) Option {
	return func(s *Service) {
		if tp != nil {
			s.telemetry = tp
		}
	}
}

// WithNotifier publishes quotes and upstream failures
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithBasketConcurrency sets how many quotes of a basket are fetched at once
func WithBasketConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.basketConcurrency = n
		}
	}
}

// NewService creates a new Service
func NewService(providers Providers, logger *zap.Logger, opts ...Option) (*Service, error) {
	if err := providers.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		providers:         providers,
		telemetry:         &telemetry.NoopProvider{},
		logger:            logger.With(zap.String("component", "market")),
		basketConcurrency: DefaultBasketConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}
