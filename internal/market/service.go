package market

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/indicator"
)

// Chart returns the raw chart document of a ticker
func (s *Service) Chart(ctx context.Context, q domain.ChartQuery) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	span, ctx := s.telemetry.StartSpan(ctx, telemetrySpanChart)
	defer span.Finish()
	span.SetTag("ticker", q.Ticker)

	started := time.Now()
	chart, err := s.providers.Chart.FetchChart(ctx, q)
	s.observe(ctx, s.providers.Chart.GetName(), "chart", q.Ticker, started, err)
	span.SetError(err)
	if err != nil {
		return nil, fmt.Errorf("fetching chart for %s: %w", q.Ticker, err)
	}

	return chart, nil
}

// Price returns the latest quote of a symbol.
// domain.ErrPriceUnavailable is returned when the provider has no price for it.
func (s *Service) Price(ctx context.Context, symbol string) (domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	if symbol == "" {
		return domain.Quote{}, domain.ValidationError{Field: "symbol", Err: fmt.Errorf("must not be empty")}
	}

	span, ctx := s.telemetry.StartSpan(ctx, telemetrySpanQuote)
	defer span.Finish()
	span.SetTag("symbol", symbol)

	started := time.Now()
	quote, err := s.providers.Quote.FetchQuote(ctx, symbol)
	s.observe(ctx, s.providers.Quote.GetName(), "quote", symbol, started, err)
	if err != nil {
		span.SetError(err)
		return domain.Quote{}, fmt.Errorf("fetching quote for %s: %w", symbol, err)
	}

	s.publish(ctx, quote)
	return quote, nil
}

// Prices fetches a basket of quotes concurrently. Results keep the order of
// the first occurrence of each symbol; one failing symbol does not affect the others.
func (s *Service) Prices(ctx context.Context, symbols []string) []domain.QuoteResult {
	basket := uniqueSymbols(symbols)

	span, ctx := s.telemetry.StartSpan(ctx, telemetrySpanBasket)
	defer span.Finish()
	span.SetTag("symbols", len(basket))
	s.telemetry.Gauge(telemetryBasketSize, float64(len(basket)))

	results := make([]domain.QuoteResult, len(basket))

	var g errgroup.Group
	g.SetLimit(s.basketConcurrency)
	for i, symbol := range basket {
		g.Go(func() error {
			quote, err := s.Price(ctx, symbol)
			results[i] = domain.QuoteResult{Symbol: symbol, Quote: quote, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Macro returns the macroeconomic snapshot. Fields the provider could not
// fetch are left empty and each missing source is reported as a failure.
func (s *Service) Macro(ctx context.Context) (domain.MacroSnapshot, error) {
	span, ctx := s.telemetry.StartSpan(ctx, telemetrySpanMacro)
	defer span.Finish()

	provider := s.providers.Macro.GetName()
	started := time.Now()
	snapshot, err := s.providers.Macro.FetchMacro(ctx)
	s.observe(ctx, provider, "macro", "", started, err)
	if err != nil {
		span.SetError(err)
		return domain.MacroSnapshot{}, fmt.Errorf("fetching macro data: %w", err)
	}

	for _, warning := range snapshot.Warnings {
		s.logger.Warn("Macro source failed", zap.String("provider", provider), zap.Error(warning))
		s.telemetry.IncrementCounter(telemetryUpstreamErrors, 1, "provider:"+provider, "op:macro")
		s.publish(ctx, domain.NewUpstreamFailure(provider, "macro", "", warning, time.Now()))
	}
	s.telemetry.Gauge(telemetryMacroMissingFields, float64(snapshot.MissingFields()))

	return snapshot, nil
}

// FearGreed returns the current fear & greed index
func (s *Service) FearGreed(ctx context.Context) (domain.FearGreed, error) {
	span, ctx := s.telemetry.StartSpan(ctx, telemetrySpanFearGreed)
	defer span.Finish()

	started := time.Now()
	index, err := s.providers.Sentiment.FetchFearGreed(ctx)
	s.observe(ctx, s.providers.Sentiment.GetName(), "fear_greed", "", started, err)
	span.SetError(err)
	if err != nil {
		return domain.FearGreed{}, fmt.Errorf("fetching fear & greed index: %w", err)
	}

	return index, nil
}

// RSI computes the RSI series of the prices. A window of 0 selects
// indicator.DefaultWindow. At least indicator.RequiredPoints(window)
// prices are required.
func (s *Service) RSI(ctx context.Context, prices []float64, window int) ([]float64, error) {
	span, _ := s.telemetry.StartSpan(ctx, telemetrySpanRSI)
	defer span.Finish()

	if window == 0 {
		window = indicator.DefaultWindow
	}
	span.SetTag("window", window)
	span.SetTag("prices", len(prices))

	if window < 0 {
		s.telemetry.IncrementCounter(telemetryRSIRejected, 1, "reason:window")
		return nil, fmt.Errorf("%w: got %d", indicator.ErrInvalidWindow, window)
	}
	if required := indicator.RequiredPoints(window); len(prices) < required {
		s.telemetry.IncrementCounter(telemetryRSIRejected, 1, "reason:length")
		return nil, &InsufficientDataError{Required: required, Got: len(prices)}
	}

	values, err := indicator.Calculate(prices, window)
	if err != nil {
		s.telemetry.IncrementCounter(telemetryRSIRejected, 1, "reason:input")
		span.SetError(err)
		return nil, err
	}
	return values, nil
}

// InsufficientDataError reports how many prices an RSI request lacked
type InsufficientDataError struct {
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least %d prices, got %d", e.Required, e.Got)
}

func (e *InsufficientDataError) Unwrap() error {
	return indicator.ErrInsufficientData
}

// uniqueSymbols normalizes symbols and drops blanks and duplicates
func uniqueSymbols(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		symbol := domain.NormalizeSymbol(raw)
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		out = append(out, symbol)
	}
	return out
}
