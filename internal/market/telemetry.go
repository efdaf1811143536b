package market

// Telemetry constants for counters
const (
	// telemetryUpstreamErrors counts failed provider calls, tagged by provider and operation
	telemetryUpstreamErrors = "upstream.errors"

	// telemetryPriceUnavailable counts quotes that carried no usable price
	telemetryPriceUnavailable = "quote.price_unavailable"

	// telemetryRSIRejected counts RSI requests rejected for bad input
	telemetryRSIRejected = "rsi.rejected"
)

// Telemetry constants for timings
const (
	// telemetryUpstreamDuration measures a single provider call
	telemetryUpstreamDuration = "upstream.duration"
)

// Telemetry constants for gauges
const (
	// telemetryBasketSize tracks the number of symbols in a quote basket
	telemetryBasketSize = "quote.basket_size"

	// telemetryMacroMissingFields tracks how many macro fields fell back to N/A
	telemetryMacroMissingFields = "macro.missing_fields"
)

// Telemetry constants for spans
const (
	telemetrySpanChart     = "market.chart"
	telemetrySpanQuote     = "market.quote"
	telemetrySpanBasket    = "market.basket"
	telemetrySpanMacro     = "market.macro"
	telemetrySpanFearGreed = "market.fear_greed"
	telemetrySpanRSI       = "market.rsi"
)
