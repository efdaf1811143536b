// Package yahoo provides a client for the Yahoo Finance chart and quote APIs
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers"
)

const (
	opChart = "chart"
	opQuote = "quote"
)

// Config holds the configuration for the Yahoo client
type Config struct {
	// Name identifies the client instance
	Name string

	// APIUrl is the base URL for chart and quote endpoints
	APIUrl string

	// UserAgent is sent with every request; Yahoo rejects the Go default
	UserAgent string

	// HTTPClient is a custom HTTP client for making requests
	HTTPClient *http.Client
}

// Client implements chart and quote fetching against Yahoo Finance
type Client struct {
	name       string
	apiURL     string
	userAgent  string
	httpClient *http.Client
	now        func() time.Time
}

// NewYahoo creates a new Yahoo client with the provided configuration
func NewYahoo(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.APIUrl == "" {
		cfg.APIUrl = DefaultAPIURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = providers.BrowserUserAgent
	}
	if cfg.Name == "" {
		cfg.Name = "yahoo"
	}

	return &Client{
		name:       cfg.Name,
		apiURL:     strings.TrimRight(cfg.APIUrl, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		now:        time.Now,
	}
}

// FetchChart returns the raw chart document for the ticker.
// The body must contain chart.result; anything else is an upstream format error.
func (c *Client) FetchChart(ctx context.Context, q domain.ChartQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("interval", q.Interval)
	params.Set("range", q.Range)
	u := c.apiURL + ChartPath + url.PathEscape(q.Ticker) + "?" + params.Encode()

	body, err := providers.Get(ctx, c.httpClient, c.request(opChart, u))
	if err != nil {
		return nil, err
	}

	var envelope chartEnvelopeDTO
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domain.NewUpstreamError(c.name, opChart, domain.ErrUpstreamFormat,
			fmt.Errorf("decoding chart for %s: %w", q.Ticker, err))
	}
	if !envelope.valid() {
		return nil, domain.NewUpstreamError(c.name, opChart, domain.ErrUpstreamFormat,
			fmt.Errorf("chart for %s has no chart.result", q.Ticker))
	}

	return json.RawMessage(body), nil
}

// FetchQuote returns the best available price for the symbol.
// A quote without any price field yields domain.ErrPriceUnavailable.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	params := url.Values{}
	params.Set("symbols", symbol)
	u := c.apiURL + QuotePath + "?" + params.Encode()

	var resp QuoteResponseDTO
	if err := providers.GetJSON(ctx, c.httpClient, c.request(opQuote, u), &resp); err != nil {
		return domain.Quote{}, err
	}
	if resp.QuoteResponse.Error != nil {
		return domain.Quote{}, domain.NewUpstreamError(c.name, opQuote, domain.ErrUpstreamUnavailable,
			fmt.Errorf("api error for %s: %s", symbol, resp.QuoteResponse.Error.Description))
	}

	dto, found := findQuote(resp.QuoteResponse.Result, symbol)
	if !found {
		return domain.Quote{}, fmt.Errorf("%w for %s", domain.ErrPriceUnavailable, symbol)
	}

	return dto.toQuote(symbol, c.now())
}

// findQuote prefers the entry whose symbol matches, falling back to the first one
func findQuote(results []QuoteDTO, symbol string) (QuoteDTO, bool) {
	if len(results) == 0 {
		return QuoteDTO{}, false
	}
	for _, r := range results {
		if strings.EqualFold(r.Symbol, symbol) {
			return r, true
		}
	}
	return results[0], true
}

func (c *Client) request(op, u string) providers.Request {
	return providers.Request{
		Provider: c.name,
		Op:       op,
		URL:      u,
		Header:   http.Header{"User-Agent": []string{c.userAgent}},
	}
}

// GetName returns the name of the client instance
func (c *Client) GetName() string {
	return c.name
}
