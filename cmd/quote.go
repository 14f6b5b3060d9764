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

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	ticker string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display market data for one ticker" }
func (*quoteCmd) Usage() string {
	return `fan quote -t <ticker>

  Fetches and displays the current market snapshot (price, market cap,
  valuation multiples) for a single ticker. No API key is required.

Usage Examples:
# Market data for Apple.
$ fan quote -t AAPL
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to fetch the quote for")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintf(os.Stderr, "Error: missing ticker. Use -t <ticker>\n")
		return subcommands.ExitUsageError
	}

	ticker := strings.ToUpper(strings.TrimSpace(c.ticker))
	quote, err := fundamentals.NewYahooQuotes().Quote(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch quote for %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.QuoteMarkdown(quote))
	return subcommands.ExitSuccess
}
