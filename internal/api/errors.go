package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/ayankousky/market-data-proxy/internal/indicator"
	"github.com/ayankousky/market-data-proxy/internal/market"
)

// chartSource names the chart provider in error payloads
const chartSource = "Yahoo Finance"

// errorPayload is returned with status 200 when an upstream call failed
type errorPayload struct {
	Error  string `json:"error"`
	Symbol string `json:"symbol,omitempty"`
}

// detailPayload is returned with a 4xx status for invalid client input
type detailPayload struct {
	Detail string `json:"detail"`
}

func rsiError(err error) (int, any) {
	var insufficient *market.InsufficientDataError
	switch {
	case errors.As(err, &insufficient):
		return http.StatusBadRequest, detailPayload{
			Detail: fmt.Sprintf("Need at least %d prices to calculate RSI", insufficient.Required),
		}
	case errors.Is(err, indicator.ErrInsufficientData),
		errors.Is(err, indicator.ErrInvalidWindow),
		errors.Is(err, indicator.ErrInvalidPrice):
		return http.StatusBadRequest, detailPayload{Detail: err.Error()}
	default:
		return http.StatusInternalServerError, detailPayload{Detail: "failed to calculate RSI"}
	}
}

func chartError(err error) (int, any) {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, detailPayload{Detail: validationErr.Error()}
	}

	var upstreamErr *domain.UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && upstreamErr.StatusCode != 0:
		return http.StatusOK, errorPayload{Error: fmt.Sprintf("%s returned status code %d", chartSource, upstreamErr.StatusCode)}
	case errors.Is(err, domain.ErrUpstreamFormat):
		return http.StatusOK, errorPayload{Error: "Invalid response structure from " + chartSource}
	default:
		return http.StatusOK, errorPayload{Error: "Failed to fetch stock data: " + err.Error()}
	}
}

func priceError(symbol string, err error) (int, errorPayload) {
	var validationErr domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errorPayload{Error: validationErr.Error(), Symbol: symbol}
	case errors.Is(err, domain.ErrPriceUnavailable):
		return http.StatusOK, errorPayload{Error: "Price not available", Symbol: symbol}
	default:
		return http.StatusOK, errorPayload{Error: err.Error(), Symbol: symbol}
	}
}
