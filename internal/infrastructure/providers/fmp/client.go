// Package fmp provides a client for the Financial Modeling Prep macro endpoints
package fmp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers"
)

const opMacro = "macro"

// Config holds the configuration for the FMP client
type Config struct {
	// Name identifies the client instance
	Name string

	// APIUrl is the base URL for the v3 API
	APIUrl string

	// APIKey is appended to every request as the apikey parameter
	APIKey string

	// HTTPClient is a custom HTTP client for making requests
	HTTPClient *http.Client
}

// Client implements macro data fetching against FMP
type Client struct {
	name       string
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewFMP creates a new FMP client with the provided configuration
func NewFMP(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.APIUrl == "" {
		cfg.APIUrl = DefaultAPIURL
	}
	if cfg.Name == "" {
		cfg.Name = "fmp"
	}

	return &Client{
		name:       cfg.Name,
		apiURL:     strings.TrimRight(cfg.APIUrl, "/") + "/",
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}

// FetchMacro queries the dollar index, treasury and economic endpoints concurrently.
// Each field of the snapshot is filled independently; a failing source only
// blanks its own fields and is reported in Warnings. An error is returned
// only when every source failed.
func (c *Client) FetchMacro(ctx context.Context) (domain.MacroSnapshot, error) {
	var (
		quotes   []QuoteDTO
		treasury []TreasuryDTO
		economic []EconomicDTO

		quoteErr, treasuryErr, economicErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		quoteErr = c.get(ctx, DXYQuotePath, &quotes)
		return nil
	})
	g.Go(func() error {
		treasuryErr = c.get(ctx, TreasuryPath, &treasury)
		return nil
	})
	g.Go(func() error {
		economicErr = c.get(ctx, EconomicPath, &economic)
		return nil
	})
	_ = g.Wait()

	if quoteErr != nil && treasuryErr != nil && economicErr != nil {
		return domain.MacroSnapshot{}, fmt.Errorf("all macro sources failed: %w", errors.Join(quoteErr, treasuryErr, economicErr))
	}

	snapshot := domain.MacroSnapshot{
		DXY:          firstPrice(quotes),
		TenYearYield: findYield(treasury, SymbolTenYear),
		Inflation:    findValue(economic, SymbolCPI),
		FedRate:      findValue(economic, SymbolFedFunds),
	}
	for _, err := range []error{quoteErr, treasuryErr, economicErr} {
		if err != nil {
			snapshot.Warnings = append(snapshot.Warnings, err)
		}
	}

	return snapshot, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	params := url.Values{}
	params.Set("apikey", c.apiKey)

	return providers.GetJSON(ctx, c.httpClient, providers.Request{
		Provider: c.name,
		Op:       opMacro + "." + path,
		URL:      c.apiURL + path + "?" + params.Encode(),
	}, dst)
}

// GetName returns the name of the client instance
func (c *Client) GetName() string {
	return c.name
}
