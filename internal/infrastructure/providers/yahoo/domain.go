package yahoo

import (
	"encoding/json"
	"time"

	"github.com/ayankousky/market-data-proxy/internal/domain"
)

const (
	// DefaultAPIURL is the base URL of the Yahoo Finance public API
	DefaultAPIURL = "https://query1.finance.yahoo.com"

	// ChartPath is the historical chart endpoint, followed by the ticker
	ChartPath = "/v8/finance/chart/"

	// QuotePath is the quote endpoint
	QuotePath = "/v7/finance/quote"
)

// chartEnvelopeDTO is only used to check the shape of a chart response.
// The body itself is passed through to the caller untouched.
type chartEnvelopeDTO struct {
	Chart *struct {
		Result json.RawMessage `json:"result"`
	} `json:"chart"`
}

func (c chartEnvelopeDTO) valid() bool {
	return c.Chart != nil && len(c.Chart.Result) > 0
}

// QuoteResponseDTO represents the body of the quote endpoint
type QuoteResponseDTO struct {
	QuoteResponse struct {
		Result []QuoteDTO `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// QuoteDTO holds the optional price fields of a single quote
type QuoteDTO struct {
	Symbol                     string   `json:"symbol"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	CurrentPrice               *float64 `json:"currentPrice"`
	Ask                        *float64 `json:"ask"`
	Bid                        *float64 `json:"bid"`
	PreviousClose              *float64 `json:"previousClose"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
}

// toQuote converts a QuoteDTO to a domain.Quote using the price priority order
func (q QuoteDTO) toQuote(symbol string, receivedAt time.Time) (domain.Quote, error) {
	previousClose := q.PreviousClose
	if previousClose == nil {
		previousClose = q.RegularMarketPreviousClose
	}

	return domain.NewQuote(symbol, receivedAt,
		domain.PriceCandidate{Source: domain.PriceSourceRegularMarket, Value: q.RegularMarketPrice},
		domain.PriceCandidate{Source: domain.PriceSourceCurrent, Value: q.CurrentPrice},
		domain.PriceCandidate{Source: domain.PriceSourceAsk, Value: q.Ask},
		domain.PriceCandidate{Source: domain.PriceSourceBid, Value: q.Bid},
		domain.PriceCandidate{Source: domain.PriceSourcePreviousClose, Value: previousClose},
	)
}
