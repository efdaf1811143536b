package strategies

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/infrastructure/notify"
	"github.com/ayankousky/market-data-proxy/internal/notifier"
)

// QuoteStrategy forwards quotes and stream updates as structured events
type QuoteStrategy struct{}

// Format wraps domain.Quote and domain.StreamUpdate values into events
func (s *QuoteStrategy) Format(data any) []notify.Event {
	switch v := data.(type) {
	case domain.Quote:
		return []notify.Event{{Time: v.ReceivedAt, EventType: string(notifier.QuoteTopic), Data: v}}
	case domain.StreamUpdate:
		if v.Error != "" {
			return nil
		}
		return []notify.Event{{Time: v.Time, EventType: string(notifier.QuoteTopic), Data: v}}
	default:
		return nil
	}
}

const (
	headerEvery  = 10
	headerFormat = "%-8s | %-10s | %10s | %7s | %6s\n"
	rowFormat    = "%-8s | %-10s | %10.2f | %7.2f | %6s\n"
)

// QuoteTableStrategy prints stream updates as table rows, repeating the header every few rows
type QuoteTableStrategy struct {
	printCount atomic.Int64
}

// Format renders a domain.StreamUpdate as one table row
func (s *QuoteTableStrategy) Format(data any) []notify.Event {
	update, ok := data.(domain.StreamUpdate)
	if !ok || update.Error != "" {
		return nil
	}

	var output strings.Builder
	if s.printCount.Add(1)%headerEvery == 1 {
		fmt.Fprintf(&output, headerFormat, "TIME", "SYMBOL", "PRICE", "CHG%", "RSI")
	}

	rsi := "-"
	if update.RSIReady {
		rsi = fmt.Sprintf("%.2f", update.RSI)
	}
	fmt.Fprintf(&output, rowFormat,
		update.Time.Format("15:04:05"),
		update.Symbol,
		update.Price,
		update.ChangePct,
		rsi,
	)

	return []notify.Event{{
		Time:      time.Now(),
		EventType: string(notifier.QuoteTopic),
		Data:      output.String(),
	}}
}
