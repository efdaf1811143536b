// Package api exposes the market data proxy over HTTP
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/telemetry"
)

//go:generate moq --out mocks/market.go --pkg mocks --with-resets --skip-ensure . Market

// Market is the set of operations served by the HTTP endpoints
type Market interface {
	Chart(ctx context.Context, q domain.ChartQuery) (json.RawMessage, error)
	Price(ctx context.Context, symbol string) (domain.Quote, error)
	Prices(ctx context.Context, symbols []string) []domain.QuoteResult
	Macro(ctx context.Context) (domain.MacroSnapshot, error)
	FearGreed(ctx context.Context) (domain.FearGreed, error)
	RSI(ctx context.Context, prices []float64, window int) ([]float64, error)
}

// StreamHandler serves the websocket quote stream
type StreamHandler interface {
	http.Handler

	// Close ends every open stream
	Close()
}

// Config holds the HTTP server settings
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// MaxBasket caps the number of symbols of a /prices request
	MaxBasket int
}

// Server is the HTTP front of the proxy
type Server struct {
	cfg       Config
	router    *gin.Engine
	market    Market
	stream    StreamHandler
	telemetry telemetry.Provider
	logger    *zap.Logger
}

// Option configures a Server
type Option func(*Server)

// WithTelemetry traces and times every request
func WithTelemetry(tp telemetry.Provider) Option {
	return func(s *Server) {
		if tp != nil {
			s.telemetry = tp
		}
	}
}

// WithStream mounts the websocket quote stream on /ws/quotes
func WithStream(h StreamHandler) Option {
	return func(s *Server) {
		s.stream = h
	}
}

// NewServer creates the server and registers its routes
func NewServer(cfg Config, market Market, logger *zap.Logger, opts ...Option) *Server {
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 10 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.MaxBasket <= 0 {
		cfg.MaxBasket = 50
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:       cfg,
		market:    market,
		telemetry: &telemetry.NoopProvider{},
		logger:    logger.With(zap.String("component", "api")),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(Recovery(s.logger))
	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))
	r.Use(Telemetry(s.telemetry))
	r.Use(CORS())
	s.router = r
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.health)

	s.router.POST("/rsi", s.rsi)
	s.router.GET("/stock/:ticker", s.stock)
	s.router.GET("/price/:symbol", s.price)
	s.router.GET("/prices", s.prices)
	s.router.GET("/macro", s.macro)
	s.router.GET("/fear-greed", s.fearGreed)

	if s.stream != nil {
		s.router.GET("/ws/quotes", gin.WrapH(s.stream))
	}
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then drains the server
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	if s.stream != nil {
		// hijacked websocket connections are not tracked by Shutdown
		srv.RegisterOnShutdown(s.stream.Close)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
