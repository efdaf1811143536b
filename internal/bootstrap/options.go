package bootstrap

import (
	"time"

	"github.com/jessevdk/go-flags"
)

// Options holds all configuration options
type Options struct {
	Env         string `long:"env" env:"ENV" description:"Environment"`
	ServiceName string `long:"service-name" env:"SERVICE_NAME" default:"market-data-proxy" description:"Service name"`

	HTTP      HTTPOptions      `group:"http" namespace:"http" env-namespace:"HTTP"`
	Upstream  UpstreamOptions  `group:"upstream" namespace:"upstream" env-namespace:"UPSTREAM"`
	Stream    StreamOptions    `group:"stream" namespace:"stream" env-namespace:"STREAM"`
	Telemetry TelemetryOptions `group:"telemetry" namespace:"telemetry" env-namespace:"TELEMETRY"`
	Notify    NotifyOptions    `group:"notify" namespace:"notify" env-namespace:"NOTIFY"`
}

// HTTPOptions configures the API server
type HTTPOptions struct {
	Addr              string        `long:"addr" env:"ADDR" default:":8000" description:"Listen address"`
	ReadHeaderTimeout time.Duration `long:"read-header-timeout" env:"READ_HEADER_TIMEOUT" default:"10s" description:"Max time to read request headers"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"Max time to drain requests on shutdown"`
	MaxBasket         int           `long:"max-basket" env:"MAX_BASKET" default:"50" description:"Max symbols of a /prices request"`
}

// UpstreamOptions configures the third-party providers
type UpstreamOptions struct {
	Timeout           time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"Timeout of a single upstream request"`
	BasketConcurrency int           `long:"basket-concurrency" env:"BASKET_CONCURRENCY" default:"8" description:"Parallel quote fetches of one basket"`
	Proxy             string        `long:"proxy" env:"PROXY" description:"(optional) HTTP proxy URL for upstream requests"`

	Yahoo struct {
		APIUrl    string `long:"api-url" env:"API_URL" description:"(optional) Yahoo Finance API URL"`
		UserAgent string `long:"user-agent" env:"USER_AGENT" description:"(optional) User-Agent sent to Yahoo Finance"`
	} `group:"yahoo" namespace:"yahoo" env-namespace:"YAHOO"`

	FMP struct {
		APIUrl string `long:"api-url" env:"API_URL" description:"(optional) Financial Modeling Prep API URL"`
		APIKey string `long:"api-key" env:"API_KEY" description:"Financial Modeling Prep API key"`
	} `group:"fmp" namespace:"fmp" env-namespace:"FMP"`

	CNN struct {
		APIUrl    string `long:"api-url" env:"API_URL" description:"(optional) CNN fear & greed API URL"`
		UserAgent string `long:"user-agent" env:"USER_AGENT" description:"(optional) User-Agent sent to CNN"`
	} `group:"cnn" namespace:"cnn" env-namespace:"CNN"`
}

// StreamOptions configures the websocket quote stream
type StreamOptions struct {
	Interval    time.Duration `long:"interval" env:"INTERVAL" default:"5s" description:"Default poll interval"`
	MinInterval time.Duration `long:"min-interval" env:"MIN_INTERVAL" default:"1s" description:"Shortest poll interval a client may request"`
	MaxSymbols  int           `long:"max-symbols" env:"MAX_SYMBOLS" default:"20" description:"Max symbols of one stream"`
	Window      int           `long:"window" env:"WINDOW" default:"14" description:"Default RSI window"`
}

// TelemetryOptions configures tracing, metrics and profiling
type TelemetryOptions struct {
	Datadog struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"Enable Datadog telemetry"`
		AgentHost       string `long:"agent-host" env:"AGENT_HOST" default:"localhost" description:"Datadog agent host"`
		AgentPort       string `long:"agent-port" env:"AGENT_PORT" default:"8126" description:"Datadog trace agent port"`
		StatsdPort      string `long:"statsd-port" env:"STATSD_PORT" default:"8125" description:"Dogstatsd port"`
		Tags            string `long:"tags" env:"TAGS" description:"Comma-separated list of global tags"`
		EnableTracing   bool   `long:"tracing" env:"TRACING" description:"Enable tracing"`
		EnableMetrics   bool   `long:"metrics" env:"METRICS" description:"Enable metrics"`
		EnableProfiling bool   `long:"profiling" env:"PROFILING" description:"Enable profiling"`
	} `group:"datadog" namespace:"datadog" env-namespace:"DATADOG"`
}

// NotifyOptions configures the notification clients
type NotifyOptions struct {
	Redis struct {
		URL    string `long:"url" env:"URL" description:"Redis URL"`
		Topics string `long:"topics" env:"TOPICS" description:"Comma-separated list of topics"`
	} `group:"redis" namespace:"redis" env-namespace:"REDIS"`

	Telegram struct {
		BotToken string `long:"bot-token" env:"BOT_TOKEN" description:"Telegram bot token"`
		ChatID   string `long:"chat-id" env:"CHAT_ID" description:"Telegram chat ID"`
		Interval int    `long:"interval" env:"INTERVAL" description:"Min interval in seconds between notifications"`
		Topics   string `long:"topics" env:"TOPICS" description:"Comma-separated list of topics"`
	} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`

	Stdout struct {
		Topics string `long:"topics" env:"TOPICS" description:"Comma-separated list of topics"`
	} `group:"stdout" namespace:"stdout" env-namespace:"STDOUT"`
}

// ParseOptions parses command line arguments and environment variables
func ParseOptions(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}
