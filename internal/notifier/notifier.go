// Package notifier routes domain events to the subscribed delivery clients
package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ayankousky/market-data-proxy/internal/infrastructure/notify"
)

// Topic represents a notification topic
type Topic string

const (
	// QuoteTopic carries every quote fetched or streamed by the proxy
	QuoteTopic Topic = "QUOTE"

	// AlertTopic carries failures of third-party providers
	AlertTopic Topic = "ALERT_UPSTREAM"
)

// DefaultSendTimeout bounds a single client delivery
const DefaultSendTimeout = 5 * time.Second

// Validate checks if the topic exists
func (t Topic) Validate() error {
	switch t {
	case QuoteTopic, AlertTopic:
		return nil
	default:
		return fmt.Errorf("invalid topic: '%s'", t)
	}
}

// Notifier is the service responsible for handling notifications
type Notifier struct {
	handlers    map[Topic][]handler
	mu          sync.RWMutex
	sendTimeout time.Duration
	logger      *zap.Logger
}

type handler struct {
	client   notify.Client
	strategy notify.Strategy
}

// New creates a new Notifier
func New(logger *zap.Logger) *Notifier {
	return &Notifier{
		handlers:    make(map[Topic][]handler),
		sendTimeout: DefaultSendTimeout,
		logger:      logger.With(zap.String("component", "notifier")),
	}
}

// Subscribe subscribes client to a topic with a given strategy
func (s *Notifier) Subscribe(topic string, client notify.Client, strategy notify.Strategy) {
	t := Topic(topic)
	if err := t.Validate(); err != nil {
		s.logger.Error("Cannot subscribe", zap.Error(err))
		return
	}
	if client == nil {
		s.logger.Error("Cannot subscribe with nil client", zap.String("topic", topic))
		return
	}
	if strategy == nil {
		s.logger.Error("Cannot subscribe with nil strategy", zap.String("topic", topic))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[t] = append(s.handlers[t], handler{
		client:   client,
		strategy: strategy,
	})
}

// SubscriberCount returns the number of handlers of a topic
func (s *Notifier) SubscriberCount(topic Topic) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handlers[topic])
}

// Notify formats data with every subscribed strategy and delivers the
// resulting events in parallel. It returns once all deliveries finished;
// delivery errors are logged, never returned.
func (s *Notifier) Notify(ctx context.Context, data any) {
	if data == nil {
		s.logger.Warn("Received nil data for notification")
		return
	}

	s.notify(ctx, QuoteTopic, data)
	s.notify(ctx, AlertTopic, data)
}

func (s *Notifier) notify(ctx context.Context, topic Topic, data any) {
	s.mu.RLock()
	handlers := make([]handler, len(s.handlers[topic]))
	copy(handlers, s.handlers[topic])
	s.mu.RUnlock()

	var g errgroup.Group
	for _, h := range handlers {
		for _, event := range h.strategy.Format(data) {
			g.Go(func() error {
				sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
				defer cancel()

				if err := h.client.Send(sendCtx, event); err != nil {
					s.logger.Error("Failed to send notification",
						zap.String("topic", string(topic)),
						zap.Error(err),
					)
					return err
				}
				return nil
			})
		}
	}

	_ = g.Wait()
}
