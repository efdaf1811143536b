package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/stream/mocks"
)

// priceFeed returns increasing prices for every symbol except the unavailable ones
type priceFeed struct {
	mu          sync.Mutex
	prices      map[string]float64
	unavailable map[string]bool
}

func newPriceFeed(unavailable ...string) *priceFeed {
	f := &priceFeed{prices: map[string]float64{}, unavailable: map[string]bool{}}
	for _, s := range unavailable {
		f.unavailable[s] = true
	}
	return f
}

func (f *priceFeed) Prices(_ context.Context, symbols []string) []domain.QuoteResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.QuoteResult, 0, len(symbols))
	for _, s := range symbols {
		if f.unavailable[s] {
			out = append(out, domain.QuoteResult{Symbol: s, Err: domain.ErrPriceUnavailable})
			continue
		}
		if _, ok := f.prices[s]; !ok {
			f.prices[s] = 100
		} else {
			f.prices[s]++
		}
		out = append(out, domain.QuoteResult{Symbol: s, Quote: domain.Quote{Symbol: s, Price: f.prices[s]}})
	}
	return out
}

func testConfig() Config {
	return Config{
		DefaultInterval: 20 * time.Millisecond,
		MinInterval:     10 * time.Millisecond,
		MaxSymbols:      3,
	}
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/?" + query
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) domain.StreamUpdate {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var update domain.StreamUpdate
	require.NoError(t, conn.ReadJSON(&update))
	return update
}

func TestHandler_StreamsUpdates(t *testing.T) {
	notifier := &mocks.NotifierMock{NotifyFunc: func(context.Context, any) {}}
	h := NewHandler(testConfig(), newPriceFeed("ZZZZ"), zap.NewNop(), WithNotifier(notifier))
	server := httptest.NewServer(h)
	defer server.Close()
	defer h.Close()

	conn := dial(t, server, "symbols=aapl,zzzz,AAPL&window=2")

	var aapl []domain.StreamUpdate
	for len(aapl) < 3 {
		update := readUpdate(t, conn)
		switch update.Symbol {
		case "AAPL":
			aapl = append(aapl, update)
		case "ZZZZ":
			assert.Equal(t, "Price not available", update.Error)
			assert.False(t, update.RSIReady)
			assert.Equal(t, 50.0, update.RSI)
		default:
			t.Fatalf("unexpected symbol %q", update.Symbol)
		}
	}

	assert.Equal(t, 100.0, aapl[0].Price)
	assert.Equal(t, 0.0, aapl[0].ChangePct, "first update has nothing to compare with")
	assert.False(t, aapl[0].RSIReady)
	assert.Equal(t, 50.0, aapl[0].RSI)

	assert.Equal(t, 101.0, aapl[1].Price)
	assert.Equal(t, 1.0, aapl[1].ChangePct)
	assert.True(t, aapl[1].RSIReady)
	assert.Equal(t, 100.0, aapl[1].RSI)

	assert.Equal(t, 0.99, aapl[2].ChangePct)

	require.Eventually(t, func() bool { return len(notifier.NotifyCalls()) >= 3 }, time.Second, 10*time.Millisecond)
	for _, call := range notifier.NotifyCalls() {
		update, ok := call.Data.(domain.StreamUpdate)
		require.True(t, ok)
		assert.Equal(t, "AAPL", update.Symbol, "failed updates are not published")
	}
}

func TestHandler_ClientDisconnect(t *testing.T) {
	quotes := &mocks.QuotesMock{
		PricesFunc: func(_ context.Context, symbols []string) []domain.QuoteResult {
			return []domain.QuoteResult{{Symbol: symbols[0], Quote: domain.Quote{Symbol: symbols[0], Price: 1}}}
		},
	}
	h := NewHandler(testConfig(), quotes, zap.NewNop())
	server := httptest.NewServer(h)
	defer server.Close()
	defer h.Close()

	conn := dial(t, server, "symbols=AAPL")
	readUpdate(t, conn)
	require.Eventually(t, func() bool { return h.Active() == 1 }, time.Second, 5*time.Millisecond)

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	require.NoError(t, conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)))

	require.Eventually(t, func() bool { return h.Active() == 0 }, 2*time.Second, 5*time.Millisecond)

	polls := len(quotes.PricesCalls())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, polls, len(quotes.PricesCalls()), "polling stops with the stream")
}

func TestHandler_Close(t *testing.T) {
	h := NewHandler(testConfig(), newPriceFeed(), zap.NewNop())
	server := httptest.NewServer(h)
	defer server.Close()

	conn := dial(t, server, "symbols=AAPL")
	readUpdate(t, conn)

	h.Close()
	assert.Equal(t, 0, h.Active())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
			break
		}
	}

	resp, err := http.Get(server.URL + "/?symbols=AAPL")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSession_ApplyRoundsRSI(t *testing.T) {
	s := newSession(nil, nil, params{symbols: []string{"AAPL"}, window: 3}, zap.NewNop())

	var last domain.StreamUpdate
	for _, price := range []float64{100, 103, 101, 102} {
		last = s.apply(domain.QuoteResult{Symbol: "AAPL", Quote: domain.Quote{Symbol: "AAPL", Price: price}})
	}
	require.True(t, last.RSIReady)
	assert.Equal(t, 66.67, last.RSI)

	failed := s.apply(domain.QuoteResult{Symbol: "AAPL", Err: domain.ErrPriceUnavailable})
	assert.Equal(t, "Price not available", failed.Error)
	assert.Equal(t, last.RSI, failed.RSI, "a failed poll repeats the last reported value")
	assert.True(t, failed.RSIReady)
}

func TestHandler_RejectsInvalidRequests(t *testing.T) {
	h := NewHandler(testConfig(), newPriceFeed(), zap.NewNop())
	server := httptest.NewServer(h)
	defer server.Close()
	defer h.Close()

	tests := []struct {
		name   string
		query  string
		detail string
	}{
		{"no symbols", "", "symbols query parameter is required"},
		{"blank symbols", "symbols=,+,", "symbols query parameter is required"},
		{"too many symbols", "symbols=A,B,C,D", "at most 3 symbols are allowed"},
		{"bad interval", "symbols=A&interval=soon", "invalid interval 'soon'"},
		{"negative interval", "symbols=A&interval=-5", "interval must be positive, got '-5'"},
		{"bad window", "symbols=A&window=0", "window must be a positive integer, got '0'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/?" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}

func TestHandler_ParseParams(t *testing.T) {
	h := NewHandler(testConfig(), newPriceFeed(), zap.NewNop())
	defer h.Close()

	tests := []struct {
		name  string
		query string
		want  params
	}{
		{
			name:  "defaults",
			query: "symbols=aapl",
			want:  params{symbols: []string{"AAPL"}, interval: 20 * time.Millisecond, window: 14},
		},
		{
			name:  "whole seconds",
			query: "symbols=aapl,msft&interval=3&window=5",
			want:  params{symbols: []string{"AAPL", "MSFT"}, interval: 3 * time.Second, window: 5},
		},
		{
			name:  "interval below minimum is raised",
			query: "symbols=aapl&interval=1ms",
			want:  params{symbols: []string{"AAPL"}, interval: 10 * time.Millisecond, window: 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws/quotes?"+tt.query, nil)
			got, err := h.parseParams(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(Config{}, newPriceFeed(), nil)
	defer h.Close()

	assert.Equal(t, DefaultInterval, h.cfg.DefaultInterval)
	assert.Equal(t, DefaultMinInterval, h.cfg.MinInterval)
	assert.Equal(t, DefaultMaxSymbols, h.cfg.MaxSymbols)
	assert.Equal(t, 14, h.cfg.Window)
}
