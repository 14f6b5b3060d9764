// Package renderer formats analysis results as markdown documents.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/shopspring/decimal"
)

// AnalysisMarkdown generates the full per-ticker analysis report.
func AnalysisMarkdown(report *fundamentals.Report) string {
	r := &reportRenderer{Builder: &strings.Builder{}}

	if len(report.Results) == 0 {
		r.Printf("No tickers could be analyzed.\n")
		return r.String()
	}

	for _, res := range report.Results {
		r.renderResult(res)
		r.Printf("\n")
	}
	return r.String()
}

// StatementsMarkdown generates one table per statement type present in the
// fundamentals table.
func StatementsMarkdown(table fundamentals.Fundamentals) string {
	r := &reportRenderer{Builder: &strings.Builder{}}
	for _, statement := range fundamentals.StatementTypes() {
		r.renderStatement(statement, table.ByStatement(statement))
	}
	if r.Len() == 0 {
		r.Printf("No statements available.\n")
	}
	return r.String()
}

// QuoteMarkdown generates the pivoted market-data table for one quote.
func QuoteMarkdown(q *fundamentals.Quote) string {
	r := &reportRenderer{Builder: &strings.Builder{}}
	r.renderQuote(q)
	return r.String()
}

// RatiosMarkdown generates the key-ratio table alone.
func RatiosMarkdown(ticker string, ratios fundamentals.RatioSet) string {
	r := &reportRenderer{Builder: &strings.Builder{}}
	r.Printf("## %s Key Ratios\n\n", ticker)
	r.renderRatios(ratios)
	return r.String()
}

// reportRenderer accumulates markdown output.
type reportRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *reportRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *reportRenderer) renderResult(res fundamentals.Result) {
	r.Printf("## %s Fundamental Analysis\n\n", res.Ticker)

	dates := res.Fundamentals.Dates()
	if len(dates) > 0 {
		labels := make([]string, 0, len(dates))
		for _, d := range dates {
			labels = append(labels, d.String())
		}
		r.Printf("Last %d statement dates: %s\n\n", len(dates), strings.Join(labels, ", "))
	}

	ConditionalBlock(r, func(w io.Writer) bool {
		fmt.Fprintf(w, "### Key Ratios\n\n")
		return writeRatioTable(w, res.Ratios)
	})

	if res.Quote != nil {
		r.renderQuote(res.Quote)
	}
}

func (r *reportRenderer) renderRatios(ratios fundamentals.RatioSet) {
	if !writeRatioTable(r, ratios) {
		r.Printf("No ratios could be computed.\n")
	}
}

// writeRatioTable writes the two-column ratio table, reporting whether any
// row was written. Values are displayed with two decimals.
func writeRatioTable(w io.Writer, ratios fundamentals.RatioSet) bool {
	if len(ratios) == 0 {
		return false
	}
	fmt.Fprintf(w, "| Ratio | Value |\n")
	fmt.Fprintf(w, "|---|---:|\n")
	for _, ratio := range ratios {
		fmt.Fprintf(w, "| %s | %s |\n", ratio.Name, ratio.Value.StringFixed(2))
	}
	fmt.Fprintf(w, "\n")
	return true
}

func (r *reportRenderer) renderQuote(q *fundamentals.Quote) {
	r.Printf("### Market Data\n\n")
	r.Printf("| Metric | Value |\n")
	r.Printf("|---|---:|\n")
	r.metric("Current Price", money(q.Price, q.Currency))
	r.metric("Market Cap", money(q.MarketCap, q.Currency))
	r.metric("Trailing P/E", number(q.TrailingPE))
	r.metric("Price to Book", number(q.PriceToBook))
	r.metric("Dividend Yield", number(q.DividendYield))
	r.metric("52 Week High", money(q.FiftyTwoWeekHigh, q.Currency))
	r.metric("52 Week Low", money(q.FiftyTwoWeekLow, q.Currency))
	r.Printf("\n")
}

// metric writes one pivoted label/value line, "n/a" for missing values.
func (r *reportRenderer) metric(label, value string) {
	if value == "" {
		value = "n/a"
	}
	r.Printf("| %s | %s |\n", label, value)
}

func money(v *decimal.Decimal, currency string) string {
	if v == nil {
		return ""
	}
	return fundamentals.M(*v, currency).String()
}

func number(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (r *reportRenderer) renderStatement(statement fundamentals.StatementType, rows fundamentals.Fundamentals) {
	if len(rows) == 0 {
		return
	}
	r.Printf("## %s\n\n", statement)

	switch statement {
	case fundamentals.IncomeStatement:
		r.Printf("| Date | Revenue | Gross Profit | Operating Income | Net Income | EPS |\n")
		r.Printf("|---|---:|---:|---:|---:|---:|\n")
		for _, row := range rows {
			r.Printf("| %s | %s | %s | %s | %s | %s |\n", row.Date,
				cell(row.Revenue), cell(row.GrossProfit), cell(row.OperatingIncome),
				cell(row.NetIncome), cell(row.EPS))
		}
	case fundamentals.BalanceSheet:
		r.Printf("| Date | Current Assets | Current Liabilities | Total Assets | Total Liabilities | Equity |\n")
		r.Printf("|---|---:|---:|---:|---:|---:|\n")
		for _, row := range rows {
			r.Printf("| %s | %s | %s | %s | %s | %s |\n", row.Date,
				cell(row.TotalCurrentAssets), cell(row.TotalCurrentLiabilities),
				cell(row.TotalAssets), cell(row.TotalLiabilities), cell(row.TotalStockholdersEquity))
		}
	case fundamentals.CashFlow:
		r.Printf("| Date | Operating Cash Flow | Capital Expenditure | Free Cash Flow |\n")
		r.Printf("|---|---:|---:|---:|\n")
		for _, row := range rows {
			r.Printf("| %s | %s | %s | %s |\n", row.Date,
				cell(row.OperatingCashFlow), cell(row.CapitalExpenditure), cell(row.FreeCashFlow))
		}
	}
	r.Printf("\n")
}

// cell renders a nil-able decimal table cell, "n/a" when missing.
func cell(v *decimal.Decimal) string {
	if v == nil {
		return "n/a"
	}
	return v.String()
}
