package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/fundamentals"
	"github.com/finlens/fundamentals/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	cfg cfgFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "analyze the watchlist and display the full report" }
func (*reportCmd) Usage() string {
	return `fan report [-tickers <list>] [-period <period>] [-limit <n>] [-api-key <key>]

  Fetches statements and quotes for every ticker of the watchlist, computes
  the key ratios and displays the per-ticker report.

Usage Examples:
# Analyze the default watchlist.
$ fan report

# Analyze two tickers over the last 5 annual periods.
$ fan report -tickers AAPL,MSFT -limit 5
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.cfg.setFlags(f) }

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.cfg.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	statements, quotes := sources(cfg)
	report := fundamentals.Run(cfg, statements, quotes)

	printMarkdown(renderer.AnalysisMarkdown(report))

	if len(report.Results) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no ticker could be analyzed\n")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
