package fmp

const (
	// DefaultAPIURL is the base URL for the Financial Modeling Prep v3 API
	DefaultAPIURL = "https://financialmodelingprep.com/api/v3/"

	// DXYQuotePath is the endpoint returning the US dollar index quote
	DXYQuotePath = "quote/DXY"

	// TreasuryPath is the endpoint returning treasury yields
	TreasuryPath = "treasury"

	// EconomicPath is the endpoint returning economic indicators
	EconomicPath = "economic"
)

// Symbols looked up in the treasury and economic lists
const (
	SymbolTenYear  = "US10Y"
	SymbolCPI      = "CPI"
	SymbolFedFunds = "FEDFUNDS"
)

// QuoteDTO is one entry of the quote endpoint
type QuoteDTO struct {
	Symbol string   `json:"symbol"`
	Price  *float64 `json:"price"`
}

// TreasuryDTO is one entry of the treasury endpoint
type TreasuryDTO struct {
	Symbol string   `json:"symbol"`
	Yield  *float64 `json:"yield"`
}

// EconomicDTO is one entry of the economic endpoint
type EconomicDTO struct {
	Symbol string   `json:"symbol"`
	Value  *float64 `json:"value"`
}

func firstPrice(quotes []QuoteDTO) *float64 {
	if len(quotes) == 0 {
		return nil
	}
	return quotes[0].Price
}

func findYield(items []TreasuryDTO, symbol string) *float64 {
	for _, item := range items {
		if item.Symbol == symbol {
			return item.Yield
		}
	}
	return nil
}

func findValue(items []EconomicDTO, symbol string) *float64 {
	for _, item := range items {
		if item.Symbol == symbol {
			return item.Value
		}
	}
	return nil
}
