package domain

import (
	"fmt"
	"strings"
)

// Chart defaults match the daily ten year view the frontend renders
const (
	DefaultChartInterval = "1d"
	DefaultChartRange    = "10y"
)

var chartIntervals = map[string]struct{}{
	"1m": {}, "2m": {}, "5m": {}, "15m": {}, "30m": {}, "60m": {}, "90m": {},
	"1h": {}, "1d": {}, "5d": {}, "1wk": {}, "1mo": {}, "3mo": {},
}

var chartRanges = map[string]struct{}{
	"1d": {}, "5d": {}, "1mo": {}, "3mo": {}, "6mo": {},
	"1y": {}, "2y": {}, "5y": {}, "10y": {}, "ytd": {}, "max": {},
}

// ChartQuery selects the bar interval and time range of a historical chart
type ChartQuery struct {
	Ticker   string
	Interval string
	Range    string
}

// NewChartQuery applies defaults for empty interval and range
func NewChartQuery(ticker, interval, rng string) ChartQuery {
	q := ChartQuery{
		Ticker:   strings.TrimSpace(ticker),
		Interval: strings.TrimSpace(interval),
		Range:    strings.TrimSpace(rng),
	}
	if q.Interval == "" {
		q.Interval = DefaultChartInterval
	}
	if q.Range == "" {
		q.Range = DefaultChartRange
	}
	return q
}

// Validate checks the query against the values the chart API understands
func (q ChartQuery) Validate() error {
	if q.Ticker == "" {
		return ValidationError{Field: "ticker", Err: fmt.Errorf("must not be empty")}
	}
	if _, ok := chartIntervals[q.Interval]; !ok {
		return ValidationError{Field: "interval", Err: fmt.Errorf("unsupported value '%s'", q.Interval)}
	}
	if _, ok := chartRanges[q.Range]; !ok {
		return ValidationError{Field: "range", Err: fmt.Errorf("unsupported value '%s'", q.Range)}
	}
	return nil
}
