package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ayankousky/market-data-proxy/internal/domain"
)

// rsiResponse is the body of a successful /rsi call
type rsiResponse struct {
	RSI []float64 `json:"rsi"`
}

// priceResponse is the body of a successful quote lookup
type priceResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

type pricesResponse struct {
	Quotes []any `json:"quotes"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// priceList is a JSON array of prices. Elements may be numbers or numeric strings.
type priceList []float64

func (p *priceList) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	prices := make([]float64, len(raw))
	for i, n := range raw {
		v, err := n.Float64()
		if err != nil {
			return fmt.Errorf("price at index %d: %w", i, err)
		}
		prices[i] = v
	}
	*p = prices
	return nil
}

// rsi expects a JSON array of prices and an optional ?window= override
func (s *Server) rsi(c *gin.Context) {
	var prices priceList
	if err := c.ShouldBindJSON(&prices); err != nil {
		c.JSON(http.StatusUnprocessableEntity, detailPayload{Detail: "request body must be a JSON array of numbers"})
		return
	}

	window := 0
	if raw := c.Query("window"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, detailPayload{Detail: "window must be an integer"})
			return
		}
		if w <= 0 {
			c.JSON(http.StatusBadRequest, detailPayload{Detail: "window must be positive"})
			return
		}
		window = w
	}

	values, err := s.market.RSI(c.Request.Context(), prices, window)
	if err != nil {
		status, payload := rsiError(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, rsiResponse{RSI: values})
}

// stock proxies the raw chart document; upstream failures are reported as 200 error payloads
func (s *Server) stock(c *gin.Context) {
	q := domain.NewChartQuery(c.Param("ticker"), c.Query("interval"), c.Query("range"))

	chart, err := s.market.Chart(c.Request.Context(), q)
	if err != nil {
		status, payload := chartError(err)
		c.JSON(status, payload)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", chart)
}

func (s *Server) price(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := s.market.Price(c.Request.Context(), symbol)
	if err != nil {
		status, payload := priceError(symbol, err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, priceResponse{Symbol: quote.Symbol, Price: quote.Price})
}

// prices looks up a comma separated basket given as ?symbols=
func (s *Server) prices(c *gin.Context) {
	var symbols []string
	for _, raw := range strings.Split(c.Query("symbols"), ",") {
		if symbol := strings.TrimSpace(raw); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, detailPayload{Detail: "symbols query parameter is required"})
		return
	}
	if len(symbols) > s.cfg.MaxBasket {
		c.JSON(http.StatusBadRequest, detailPayload{Detail: "at most " + strconv.Itoa(s.cfg.MaxBasket) + " symbols are allowed"})
		return
	}

	results := s.market.Prices(c.Request.Context(), symbols)

	resp := pricesResponse{Quotes: make([]any, 0, len(results))}
	for _, r := range results {
		if r.Err != nil {
			_, payload := priceError(r.Symbol, r.Err)
			resp.Quotes = append(resp.Quotes, payload)
			continue
		}
		resp.Quotes = append(resp.Quotes, priceResponse{Symbol: r.Quote.Symbol, Price: r.Quote.Price})
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) macro(c *gin.Context) {
	snapshot, err := s.market.Macro(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, errorPayload{Error: "Failed to fetch macro data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) fearGreed(c *gin.Context) {
	index, err := s.market.FearGreed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, errorPayload{Error: "Failed to fetch Fear & Greed Index: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, index)
}
