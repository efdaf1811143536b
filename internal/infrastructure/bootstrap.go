package infrastructure

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a new Redis client to inject into the other services
func NewRedisClient(ctx context.Context, url string, maxConns int) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		opt.PoolSize = maxConns
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// NewHTTPClient creates the client shared by the upstream providers.
// timeout bounds a whole request including reading the body. An empty
// proxyURL falls back to the HTTP(S)_PROXY environment.
func NewHTTPClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy url '%s'", proxyURL)
		}
		transport.Proxy = http.ProxyURL(u)
	}
	transport.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.MaxIdleConnsPerHost = 16
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

// NewLogger creates a new logger to inject into the other services
func NewLogger(env, service string) (*zap.Logger, error) {
	if env == "" || env == "development" {
		return zap.NewDevelopment(zap.Fields(zap.String("service", service)))
	}

	return zap.NewProduction(zap.Fields(
		zap.String("env", env),
		zap.String("service", service),
	))
}
