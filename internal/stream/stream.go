// Package stream serves live quotes with a rolling RSI over websocket
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/indicator"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/telemetry"
)

//go:generate moq --out mocks/stream.go --pkg mocks --with-resets --skip-ensure . Quotes Notifier

// Stream defaults
const (
	DefaultInterval    = 5 * time.Second
	DefaultMinInterval = time.Second
	DefaultMaxSymbols  = 20
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
)

// Telemetry constants for stream metrics
const (
	telemetryStreamsOpened = "stream.sessions"
	telemetryStreamsActive = "stream.active"
	telemetryStreamUpdates = "stream.updates"
)

// Quotes fetches a basket of quotes
type Quotes interface {
	Prices(ctx context.Context, symbols []string) []domain.QuoteResult
}

// Notifier receives every update written to a stream
type Notifier interface {
	Notify(ctx context.Context, data any)
}

// Config holds the stream limits
type Config struct {
	// DefaultInterval is used when the client does not pass ?interval=
	DefaultInterval time.Duration

	// MinInterval is the shortest poll interval a client may ask for
	MinInterval time.Duration

	// MaxSymbols caps the basket of a single stream
	MaxSymbols int

	// Window is the default RSI window
	Window int
}

// Handler upgrades requests to websocket quote streams
type Handler struct {
	cfg       Config
	quotes    Quotes
	notifier  Notifier
	telemetry telemetry.Provider
	logger    *zap.Logger
	upgrader  websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	active atomic.Int64
}

// Option configures a Handler
type Option func(*Handler)

// WithNotifier publishes every successful update
func WithNotifier(n Notifier) Option {
	return func(h *Handler) {
		if n != nil {
			h.notifier = n
		}
	}
}

// WithTelemetry records stream metrics
func WithTelemetry(tp telemetry.Provider) Option {
	return func(h *Handler) {
		if tp != nil {
			h.telemetry = tp
		}
	}
}

// NewHandler creates a stream handler polling quotes from the given source
func NewHandler(cfg Config, quotes Quotes, logger *zap.Logger, opts ...Option) *Handler {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = DefaultMinInterval
	}
	if cfg.DefaultInterval <= 0 {
		cfg.DefaultInterval = DefaultInterval
	}
	if cfg.DefaultInterval < cfg.MinInterval {
		cfg.DefaultInterval = cfg.MinInterval
	}
	if cfg.MaxSymbols <= 0 {
		cfg.MaxSymbols = DefaultMaxSymbols
	}
	if cfg.Window <= 0 {
		cfg.Window = indicator.DefaultWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handler{
		cfg:       cfg,
		quotes:    quotes,
		telemetry: &telemetry.NoopProvider{},
		logger:    logger.With(zap.String("component", "stream")),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// params is a validated stream request
type params struct {
	symbols  []string
	interval time.Duration
	window   int
}

// ServeHTTP validates the query, upgrades the connection and streams until
// the client goes away or Close is called
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.parseParams(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.track() {
		writeDetail(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer h.wg.Done()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	h.telemetry.IncrementCounter(telemetryStreamsOpened, 1)
	h.telemetry.Gauge(telemetryStreamsActive, float64(h.active.Add(1)))
	defer func() {
		h.telemetry.Gauge(telemetryStreamsActive, float64(h.active.Add(-1)))
	}()

	logger := h.logger.With(
		zap.Strings("symbols", p.symbols),
		zap.Duration("interval", p.interval),
		zap.Int("window", p.window),
		zap.String("remote", r.RemoteAddr),
	)
	logger.Info("Stream opened")

	s := newSession(h, conn, p, logger)
	if err := s.run(h.ctx); err != nil {
		logger.Info("Stream closed", zap.Error(err))
		return
	}
	logger.Info("Stream closed")
}

// Close ends every open stream and refuses new ones
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}

// Active returns the number of open streams
func (h *Handler) Active() int {
	return int(h.active.Load())
}

func (h *Handler) track() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.wg.Add(1)
	return true
}

func (h *Handler) parseParams(r *http.Request) (params, error) {
	q := r.URL.Query()
	p := params{interval: h.cfg.DefaultInterval, window: h.cfg.Window}

	seen := make(map[string]struct{})
	for _, raw := range strings.Split(q.Get("symbols"), ",") {
		symbol := domain.NormalizeSymbol(raw)
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		p.symbols = append(p.symbols, symbol)
	}
	if len(p.symbols) == 0 {
		return params{}, errors.New("symbols query parameter is required")
	}
	if len(p.symbols) > h.cfg.MaxSymbols {
		return params{}, fmt.Errorf("at most %d symbols are allowed", h.cfg.MaxSymbols)
	}

	if raw := q.Get("interval"); raw != "" {
		interval, err := parseInterval(raw)
		if err != nil {
			return params{}, err
		}
		p.interval = max(interval, h.cfg.MinInterval)
	}

	if raw := q.Get("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window <= 0 {
			return params{}, fmt.Errorf("window must be a positive integer, got '%s'", raw)
		}
		p.window = window
	}

	return p, nil
}

// parseInterval accepts a Go duration ("1500ms", "5s") or whole seconds ("5")
func parseInterval(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("interval must be positive, got '%s'", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid interval '%s'", raw)
	}
	return d, nil
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
