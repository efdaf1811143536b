// Package providers holds the HTTP plumbing shared by third-party market data clients
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ayankousky/market-data-proxy/internal/domain"
)

const (
	// BrowserUserAgent is sent to providers that reject default Go clients
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// MaxResponseBytes caps how much of an upstream body is read
	MaxResponseBytes = 16 << 20
)

// Request describes a single GET against a provider
type Request struct {
	Provider string
	Op       string
	URL      string
	Header   http.Header
}

// Get executes the request and returns the body of a 200 response.
// Failures are returned as *domain.UpstreamError.
func Get(ctx context.Context, client *http.Client, r Request) ([]byte, error) {
	target := redact(r.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, http.NoBody)
	if err != nil {
		return nil, domain.NewUpstreamError(r.Provider, r.Op, domain.ErrUpstreamUnavailable,
			fmt.Errorf("creating request for %s: %w", target, err))
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		// Do wraps failures in *url.Error which repeats the full URL
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, domain.NewUpstreamError(r.Provider, r.Op, domain.ErrUpstreamUnavailable,
			fmt.Errorf("executing request for %s: %w", target, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBytes))
		return nil, &domain.UpstreamError{
			Provider:   r.Provider,
			Op:         r.Op,
			StatusCode: resp.StatusCode,
			Kind:       domain.ErrUpstreamUnavailable,
			Err:        fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, domain.NewUpstreamError(r.Provider, r.Op, domain.ErrUpstreamUnavailable,
			fmt.Errorf("reading response from %s: %w", target, err))
	}

	return body, nil
}

// GetJSON executes the request and decodes the body into dst
func GetJSON(ctx context.Context, client *http.Client, r Request, dst any) error {
	body, err := Get(ctx, client, r)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewUpstreamError(r.Provider, r.Op, domain.ErrUpstreamFormat,
			fmt.Errorf("decoding response from %s: %w", redact(r.URL), err))
	}
	return nil
}

// redact drops the query string so API keys never reach logs or error payloads
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
