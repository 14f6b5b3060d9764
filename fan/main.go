// Command fan analyzes the fundamentals of a stock watchlist.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/finlens/fundamentals/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion.
// Run COMP_INSTALL=1 fan once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"report":     {Flags: cfgPredictors()},
		"ratios":     {Flags: withTicker(cfgPredictors())},
		"assist":     {Flags: cfgPredictors(), Args: predict.Something},
		"statements": {Flags: statementPredictors()},
		"quote":      {Flags: map[string]complete.Predictor{"t": predict.Something}},
		"topic":      {Args: predict.Set{"readme", "ratios", "providers"}},
	},
}

func cfgPredictors() map[string]complete.Predictor {
	return map[string]complete.Predictor{
		"api-key": predict.Something,
		"tickers": predict.Something,
		"period":  predict.Set{"annual", "quarter"},
		"limit":   predict.Something,
	}
}

func withTicker(flags map[string]complete.Predictor) map[string]complete.Predictor {
	flags["t"] = predict.Something
	return flags
}

func statementPredictors() map[string]complete.Predictor {
	flags := withTicker(cfgPredictors())
	flags["s"] = predict.Set{"income", "balance", "cashflow"}
	return flags
}

func main() {
	completion.Complete("fan")

	// Load .env file if it exists (local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
