package domain

import "time"

// StreamUpdate is one message of the live quote stream
type StreamUpdate struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price,omitempty"`
	ChangePct float64   `json:"changePct"` // vs the previous poll
	RSI       float64   `json:"rsi"`
	RSIReady  bool      `json:"rsiReady"` // false while RSI is the neutral placeholder
	Error     string    `json:"error,omitempty"`
	Time      time.Time `json:"time"`
}
