// Package cnn provides a client for the CNN fear & greed index
package cnn

import (
	"context"
	"errors"
	"net/http"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/providers"
)

const opFearGreed = "fear_greed"

var errMissingScore = errors.New("fear_and_greed.score is missing")

// Config holds the configuration for the CNN client
type Config struct {
	Name       string
	APIUrl     string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches the fear & greed index
type Client struct {
	name       string
	apiURL     string
	userAgent  string
	httpClient *http.Client
}

// NewCNN creates a new CNN client with the provided configuration
func NewCNN(cfg Config) *Client {
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
		cfg.Name = "cnn"
	}

	return &Client{
		name:       cfg.Name,
		apiURL:     cfg.APIUrl,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
	}
}

// FetchFearGreed returns the current index score and rating
func (c *Client) FetchFearGreed(ctx context.Context) (domain.FearGreed, error) {
	var dto GraphDataDTO
	err := providers.GetJSON(ctx, c.httpClient, providers.Request{
		Provider: c.name,
		Op:       opFearGreed,
		URL:      c.apiURL,
		Header:   http.Header{"User-Agent": []string{c.userAgent}},
	}, &dto)
	if err != nil {
		return domain.FearGreed{}, err
	}

	if dto.FearAndGreed == nil || dto.FearAndGreed.Score == nil {
		return domain.FearGreed{}, domain.NewUpstreamError(c.name, opFearGreed, domain.ErrUpstreamFormat, errMissingScore)
	}

	return domain.FearGreed{
		Score:  *dto.FearAndGreed.Score,
		Rating: dto.FearAndGreed.Rating,
	}, nil
}

// GetName returns the name of the client instance
func (c *Client) GetName() string {
	return c.name
}
