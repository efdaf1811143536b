package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayankousky/market-data-proxy/pkg/utils/mathutils"
)

// PriceSource names the quote field a price was taken from
type PriceSource string

// Price fields in the order they are tried
const (
	PriceSourceRegularMarket PriceSource = "regularMarketPrice"
	PriceSourceCurrent       PriceSource = "currentPrice"
	PriceSourceAsk           PriceSource = "ask"
	PriceSourceBid           PriceSource = "bid"
	PriceSourcePreviousClose PriceSource = "previousClose"
)

// QuotePriceDecimals is the precision quotes are reported with
const QuotePriceDecimals = 2

// Quote is the best available price for a symbol
type Quote struct {
	Symbol     string      `json:"symbol"`
	Price      float64     `json:"price"`
	Source     PriceSource `json:"source"`
	ReceivedAt time.Time   `json:"received_at"`
}

// PriceCandidate is one optional price field of an upstream quote
type PriceCandidate struct {
	Source PriceSource
	Value  *float64
}

// SelectPrice returns the first candidate holding a usable price.
// Missing, zero and non-finite values are skipped.
func SelectPrice(candidates ...PriceCandidate) (float64, PriceSource, bool) {
	for _, c := range candidates {
		if c.Value == nil {
			continue
		}
		v := *c.Value
		if v == 0 || !mathutils.IsFinite(v) {
			continue
		}
		return v, c.Source, true
	}
	return 0, "", false
}

// NewQuote selects a price from the candidates and normalizes the symbol.
// It returns ErrPriceUnavailable when no candidate holds a price.
func NewQuote(symbol string, receivedAt time.Time, candidates ...PriceCandidate) (Quote, error) {
	price, source, ok := SelectPrice(candidates...)
	if !ok {
		return Quote{}, fmt.Errorf("%w for %s", ErrPriceUnavailable, symbol)
	}

	return Quote{
		Symbol:     NormalizeSymbol(symbol),
		Price:      mathutils.Round(price, QuotePriceDecimals),
		Source:     source,
		ReceivedAt: receivedAt,
	}, nil
}

// NormalizeSymbol trims and upper-cases a ticker symbol
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// QuoteResult is the outcome of fetching one symbol of a basket
type QuoteResult struct {
	Symbol string
	Quote  Quote
	Err    error
}
