// Package cmd implements the CLI application to analyze stock fundamentals.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/finlens/fundamentals/fmp"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "analysis")
	c.Register(&ratiosCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")

	c.Register(&statementsCmd{}, "data")
	c.Register(&quoteCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

const fmp_api_key = "FMP_API_KEY"

// cfgFlags holds the flags shared by the commands that query the
// fundamentals provider.
type cfgFlags struct {
	apiKey  string
	tickers string
	period  string
	limit   int
}

func (c *cfgFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "api-key", "", "Financial Modeling Prep API key. This flag takes precedence over the "+fmp_api_key+" environment variable. You can get one at https://financialmodelingprep.com/")
	f.StringVar(&c.tickers, "tickers", "", "Comma-separated tickers to analyze. Defaults to "+strings.Join(fundamentals.DefaultTickers, ","))
	f.StringVar(&c.period, "period", fundamentals.DefaultPeriod, "Reporting period: annual or quarter")
	f.IntVar(&c.limit, "limit", fundamentals.DefaultLimit, "Number of reporting periods to fetch per statement")
}

// fmpApiKey retrieves the API key from the command-line flag or the environment variable.
// It prioritizes the flag over the environment variable.
func (c *cfgFlags) fmpApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if c.apiKey == "" {
		c.apiKey = os.Getenv(fmp_api_key)
	}
	return c.apiKey
}

// config assembles and validates the run configuration from the flags.
func (c *cfgFlags) config() (fundamentals.Config, error) {
	key := c.fmpApiKey()
	if key == "" {
		return fundamentals.Config{}, fmt.Errorf("FMP API key is not set. Use -api-key flag or %s environment variable", fmp_api_key)
	}
	cfg := fundamentals.NewConfig(key)
	if tickers := splitTickers(c.tickers); len(tickers) > 0 {
		cfg.Tickers = tickers
	}
	cfg.Period = c.period
	cfg.Limit = c.limit
	if err := cfg.Validate(); err != nil {
		return fundamentals.Config{}, err
	}
	return cfg, nil
}

// splitTickers parses a comma-separated ticker list, uppercasing and
// dropping empty entries.
func splitTickers(s string) []string {
	var tickers []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// sources returns the production statement and quote providers.
func sources(cfg fundamentals.Config) (fundamentals.StatementSource, fundamentals.QuoteSource) {
	return fmp.NewClient(cfg.APIKey), fundamentals.NewYahooQuotes()
}
