package fundamentals

import (
	"log"
)

// This file contains the per-ticker analysis pipeline.

// StatementSource fetches one statement table for one ticker.
type StatementSource interface {
	Statements(ticker string, statement StatementType, period string, limit int) (Fundamentals, error)
}

// QuoteSource fetches the current market snapshot for one ticker.
type QuoteSource interface {
	Quote(ticker string) (*Quote, error)
}

// Result aggregates everything computed for one ticker.
type Result struct {
	Ticker       string
	Fundamentals Fundamentals
	Quote        *Quote
	Ratios       RatioSet
}

// Report holds the per-ticker results of one run, in configured ticker order.
type Report struct {
	Results []Result
}

// Result returns the result for the given ticker, or nil when the ticker
// was skipped or never configured.
func (r *Report) Result(ticker string) *Result {
	for i := range r.Results {
		if r.Results[i].Ticker == ticker {
			return &r.Results[i]
		}
	}
	return nil
}

// Tickers returns the tickers present in the report, in report order.
func (r *Report) Tickers() []string {
	tickers := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		tickers = append(tickers, res.Ticker)
	}
	return tickers
}

// fetchFundamentals assembles the combined statement table for one ticker:
// the three statement types in report order, each fetched independently.
// Provider failures are logged here and degrade to an empty per-statement
// table; they never abort the run.
func fetchFundamentals(cfg Config, src StatementSource, ticker string) Fundamentals {
	var table Fundamentals
	for _, statement := range StatementTypes() {
		rows, err := src.Statements(ticker, statement, cfg.Period, cfg.Limit)
		if err != nil {
			log.Printf("cannot fetch %s for %s: %v", statement, ticker, err)
			continue
		}
		table = append(table, rows...)
	}
	return table
}

// Run executes the analysis pipeline for every configured ticker,
// sequentially and in configured order.
//
// A ticker whose fundamentals could not be fetched at all is skipped with
// a log line and leaves no entry in the report. A missing quote only costs
// the market ratios.
func Run(cfg Config, statements StatementSource, quotes QuoteSource) *Report {
	report := &Report{}

	for _, ticker := range cfg.Tickers {
		table := fetchFundamentals(cfg, statements, ticker)
		if len(table) == 0 {
			log.Printf("no fundamentals for %s, skipping", ticker)
			continue
		}

		quote, err := quotes.Quote(ticker)
		if err != nil {
			log.Printf("cannot fetch quote for %s: %v", ticker, err)
			quote = nil
		}

		report.Results = append(report.Results, Result{
			Ticker:       ticker,
			Fundamentals: table,
			Quote:        quote,
			Ratios:       Analyze(table, quote),
		})
	}
	return report
}
