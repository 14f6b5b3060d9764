package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/finlens/fundamentals/fmp"
	"github.com/finlens/fundamentals/renderer"
	"github.com/google/subcommands"
)

// statementsCmd holds the flags for the 'statements' subcommand.
type statementsCmd struct {
	cfg       cfgFlags
	ticker    string
	statement string
}

func (*statementsCmd) Name() string     { return "statements" }
func (*statementsCmd) Synopsis() string { return "display the raw statement tables for one ticker" }
func (*statementsCmd) Usage() string {
	return `fan statements -t <ticker> [-s <statement>] [-period <period>] [-limit <n>]

  Fetches and displays the reported statement rows for a single ticker.
  By default all three statements are shown; -s restricts to one of
  income, balance or cashflow.

Usage Examples:
# The last 3 annual balance sheets of Microsoft.
$ fan statements -t MSFT -s balance
`
}

func (c *statementsCmd) SetFlags(f *flag.FlagSet) {
	c.cfg.setFlags(f)
	f.StringVar(&c.ticker, "t", "", "Ticker to fetch statements for")
	f.StringVar(&c.statement, "s", "", "Restrict to one statement: income, balance or cashflow")
}

// parseStatement resolves the -s flag value into a statement type.
func parseStatement(s string) (fundamentals.StatementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return fundamentals.IncomeStatement, nil
	case "balance":
		return fundamentals.BalanceSheet, nil
	case "cashflow", "cash-flow":
		return fundamentals.CashFlow, nil
	}
	return "", fmt.Errorf("unknown statement %q: use income, balance or cashflow", s)
}

func (c *statementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintf(os.Stderr, "Error: missing ticker. Use -t <ticker>\n")
		return subcommands.ExitUsageError
	}
	cfg, err := c.cfg.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	statements := fundamentals.StatementTypes()
	if c.statement != "" {
		only, err := parseStatement(c.statement)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		statements = []fundamentals.StatementType{only}
	}

	client := fmp.NewClient(cfg.APIKey)
	var table fundamentals.Fundamentals
	for _, statement := range statements {
		rows, err := client.Statements(c.ticker, statement, cfg.Period, cfg.Limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch %s for %s: %v\n", statement, c.ticker, err)
			return subcommands.ExitFailure
		}
		table = append(table, rows...)
	}

	printMarkdown(renderer.StatementsMarkdown(table))
	return subcommands.ExitSuccess
}
