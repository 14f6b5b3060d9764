package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/finlens/fundamentals/renderer"
	"github.com/google/subcommands"
)

// ratiosCmd holds the flags for the 'ratios' subcommand.
type ratiosCmd struct {
	cfg    cfgFlags
	ticker string
}

func (*ratiosCmd) Name() string     { return "ratios" }
func (*ratiosCmd) Synopsis() string { return "display the key ratios for one ticker" }
func (*ratiosCmd) Usage() string {
	return `fan ratios -t <ticker> [-period <period>] [-limit <n>]

  Runs the full analysis for a single ticker and displays its key
  ratios table.

Usage Examples:
# Key ratios for Microsoft.
$ fan ratios -t MSFT
`
}

func (c *ratiosCmd) SetFlags(f *flag.FlagSet) {
	c.cfg.setFlags(f)
	f.StringVar(&c.ticker, "t", "", "Ticker to analyze")
}

func (c *ratiosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintf(os.Stderr, "Error: missing ticker. Use -t <ticker>\n")
		return subcommands.ExitUsageError
	}
	cfg, err := c.cfg.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ticker := strings.ToUpper(strings.TrimSpace(c.ticker))
	cfg.Tickers = []string{ticker}

	statements, quotes := sources(cfg)
	report := fundamentals.Run(cfg, statements, quotes)
	result := report.Result(ticker)
	if result == nil {
		fmt.Fprintf(os.Stderr, "Error: %s could not be analyzed\n", ticker)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RatiosMarkdown(result.Ticker, result.Ratios))
	return subcommands.ExitSuccess
}
