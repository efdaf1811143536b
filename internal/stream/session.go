package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/indicator"
	"github.com/ayankousky/market-data-proxy/pkg/utils/mathutils"
)

// changeDecimals is the precision of StreamUpdate.ChangePct and StreamUpdate.RSI
const changeDecimals = 2

// tracker holds the per-symbol state of a stream
type tracker struct {
	rsi  *indicator.RSI
	last float64
	seen bool
}

// session is one websocket connection. Only the run loop writes to conn.
type session struct {
	h       *Handler
	conn    *websocket.Conn
	params  params
	symbols map[string]*tracker
	logger  *zap.Logger
	now     func() time.Time
}

func newSession(h *Handler, conn *websocket.Conn, p params, logger *zap.Logger) *session {
	return &session{
		h:       h,
		conn:    conn,
		params:  p,
		symbols: make(map[string]*tracker, len(p.symbols)),
		logger:  logger,
		now:     time.Now,
	}
}

// run polls the basket every interval until the client disconnects or ctx is done
func (s *session) run(ctx context.Context) error {
	defer s.conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readDone := make(chan error, 1)
	go func() {
		readDone <- s.readLoop()
		cancel()
	}()

	poll := time.NewTicker(s.params.interval)
	defer poll.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := s.poll(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			select {
			case err := <-readDone:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				return err
			default:
			}
			s.closeGoingAway()
			return nil
		case <-poll.C:
			if err := s.poll(ctx); err != nil {
				return err
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("writing ping: %w", err)
			}
		}
	}
}

// readLoop drains client frames so that pongs and close frames are processed
func (s *session) readLoop() error {
	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return fmt.Errorf("setting read deadline: %w", err)
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return err
		}
	}
}

func (s *session) poll(ctx context.Context) error {
	results := s.h.quotes.Prices(ctx, s.params.symbols)
	if ctx.Err() != nil {
		return nil
	}

	for _, r := range results {
		update := s.apply(r)
		if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("setting write deadline: %w", err)
		}
		if err := s.conn.WriteJSON(update); err != nil {
			return fmt.Errorf("writing update: %w", err)
		}
		s.h.telemetry.IncrementCounter(telemetryStreamUpdates, 1, "symbol:"+update.Symbol)

		if s.h.notifier != nil && update.Error == "" {
			s.h.notifier.Notify(ctx, update)
		}
	}
	return nil
}

// apply feeds a quote result into the symbol's tracker and builds the update
func (s *session) apply(r domain.QuoteResult) domain.StreamUpdate {
	t, ok := s.symbols[r.Symbol]
	if !ok {
		rsi, err := indicator.NewRSI(s.params.window)
		if err != nil {
			// window is validated by parseParams
			panic(err)
		}
		t = &tracker{rsi: rsi}
		s.symbols[r.Symbol] = t
	}

	update := domain.StreamUpdate{Symbol: r.Symbol, Time: s.now()}
	if r.Err != nil {
		update.Error = errorText(r.Err)
		update.RSI = mathutils.Round(t.rsi.Value(), changeDecimals)
		update.RSIReady = t.rsi.Ready()
		return update
	}

	price := r.Quote.Price
	if t.seen {
		update.ChangePct = mathutils.PercDiff(price, t.last, changeDecimals)
	}
	t.last, t.seen = price, true

	update.Price = price
	update.RSI = mathutils.Round(t.rsi.Update(price), changeDecimals)
	update.RSIReady = t.rsi.Ready()
	if !r.Quote.ReceivedAt.IsZero() {
		update.Time = r.Quote.ReceivedAt
	}
	return update
}

func (s *session) closeGoingAway() {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	if err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		s.logger.Debug("Failed to send close frame", zap.Error(err))
	}
}

func errorText(err error) string {
	if errors.Is(err, domain.ErrPriceUnavailable) {
		return "Price not available"
	}
	return err.Error()
}
