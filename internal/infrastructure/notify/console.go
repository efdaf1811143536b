package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleNotifier writes notifications to stdout or another writer
type ConsoleNotifier struct {
	out io.Writer
	mu  sync.Mutex
}

// NewConsoleNotifier creates a new console notifier; a nil writer means stdout
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleNotifier{out: out}
}

// Send prints string data as is and everything else as a JSON line
func (n *ConsoleNotifier) Send(_ context.Context, event Event) error {
	var line string
	switch data := event.Data.(type) {
	case string:
		line = data
	default:
		b, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshaling event: %w", err)
		}
		line = string(b) + "\n"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := io.WriteString(n.out, line); err != nil {
		return fmt.Errorf("writing to console: %w", err)
	}
	return nil
}
