package fundamentals

import (
	"fmt"
)

// Defaults for the analysis configuration.
const (
	DefaultPeriod = "annual"
	DefaultLimit  = 3
)

// DefaultTickers is the watchlist analyzed when no tickers are configured.
var DefaultTickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "META"}

// Config carries everything a run needs. It is built once by the caller
// and passed in explicitly; there is no process-wide configuration state.
type Config struct {
	// APIKey authenticates against the fundamentals provider.
	APIKey string
	// Tickers lists the symbols to analyze, in report order.
	Tickers []string
	// Period selects the reporting period, "annual" or "quarter".
	Period string
	// Limit caps the number of reporting periods fetched per statement.
	Limit int
}

// NewConfig returns a Config for the given API key with the default
// watchlist, period and limit.
func NewConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Tickers: DefaultTickers,
		Period:  DefaultPeriod,
		Limit:   DefaultLimit,
	}
}

// Validate reports whether the configuration is usable for a run.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing fundamentals API key")
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("no tickers configured")
	}
	switch c.Period {
	case "annual", "quarter":
	default:
		return fmt.Errorf("invalid period %q: must be annual or quarter", c.Period)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("invalid limit %d: must be positive", c.Limit)
	}
	return nil
}
