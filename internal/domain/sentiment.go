package domain

// FearGreed is the current value of the fear & greed sentiment index
type FearGreed struct {
	Score  float64 `json:"fearGreedIndex"`
	Rating string  `json:"rating,omitempty"`
}
