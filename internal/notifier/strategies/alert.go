package strategies

import (
	"time"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/notify"
	"github.com/ayankousky/market-data-proxy/internal/notifier"
)

// UpstreamAlertStrategy renders provider failures as human readable alerts
type UpstreamAlertStrategy struct{}

// Format turns an *domain.UpstreamFailure into a single string event
func (s *UpstreamAlertStrategy) Format(data any) []notify.Event {
	failure, ok := data.(*domain.UpstreamFailure)
	if !ok || failure == nil {
		return nil
	}

	return []notify.Event{{
		Time:      time.Now(),
		EventType: string(notifier.AlertTopic),
		Data:      failure.Format(),
	}}
}

// UpstreamEventStrategy forwards provider failures as structured events
type UpstreamEventStrategy struct{}

// Format wraps an *domain.UpstreamFailure into an event
func (s *UpstreamEventStrategy) Format(data any) []notify.Event {
	failure, ok := data.(*domain.UpstreamFailure)
	if !ok || failure == nil {
		return nil
	}

	return []notify.Event{{
		Time:      failure.Time,
		EventType: string(notifier.AlertTopic),
		Data:      failure,
	}}
}
