package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func candidates(regular, current, ask, bid, prevClose *float64) []PriceCandidate {
	return []PriceCandidate{
		{Source: PriceSourceRegularMarket, Value: regular},
		{Source: PriceSourceCurrent, Value: current},
		{Source: PriceSourceAsk, Value: ask},
		{Source: PriceSourceBid, Value: bid},
		{Source: PriceSourcePreviousClose, Value: prevClose},
	}
}

func TestSelectPrice(t *testing.T) {
	tests := []struct {
		name       string
		candidates []PriceCandidate
		wantPrice  float64
		wantSource PriceSource
		wantOK     bool
	}{
		{
			name:       "regular market price wins",
			candidates: candidates(ptr(187.1), ptr(187.2), ptr(187.3), ptr(187.0), ptr(185)),
			wantPrice:  187.1,
			wantSource: PriceSourceRegularMarket,
			wantOK:     true,
		},
		{
			name:       "falls back to current price",
			candidates: candidates(nil, ptr(187.2), ptr(187.3), nil, nil),
			wantPrice:  187.2,
			wantSource: PriceSourceCurrent,
			wantOK:     true,
		},
		{
			name:       "zero ask is skipped in favour of bid",
			candidates: candidates(nil, nil, ptr(0), ptr(186.9), ptr(185)),
			wantPrice:  186.9,
			wantSource: PriceSourceBid,
			wantOK:     true,
		},
		{
			name:       "previous close is the last resort",
			candidates: candidates(nil, nil, nil, nil, ptr(185)),
			wantPrice:  185,
			wantSource: PriceSourcePreviousClose,
			wantOK:     true,
		},
		{
			name:       "non-finite values are skipped",
			candidates: candidates(ptr(math.NaN()), ptr(math.Inf(1)), nil, nil, ptr(185)),
			wantPrice:  185,
			wantSource: PriceSourcePreviousClose,
			wantOK:     true,
		},
		{
			name:       "nothing available",
			candidates: candidates(nil, nil, nil, nil, nil),
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, source, ok := SelectPrice(tt.candidates...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrice, price)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestNewQuote(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

	quote, err := NewQuote(" aapl ", at, candidates(ptr(213.4567), nil, nil, nil, nil)...)
	require.NoError(t, err)
	assert.Equal(t, Quote{
		Symbol:     "AAPL",
		Price:      213.46,
		Source:     PriceSourceRegularMarket,
		ReceivedAt: at,
	}, quote)

	_, err = NewQuote("aapl", at, candidates(nil, nil, nil, nil, nil)...)
	assert.ErrorIs(t, err, ErrPriceUnavailable)
}
