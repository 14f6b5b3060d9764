// Package fundamentals fetches reported financial statements and market
// quotes for a watchlist of equities and derives a small set of valuation
// and profitability ratios from them.
//
// The core functionalities include:
//   - Statement Tables: Typed rows for income statement, balance sheet and
//     cash-flow statement data, tagged with their statement kind and
//     validated at the provider boundary.
//   - Market Quotes: A snapshot of market-derived metrics (price, market
//     capitalization, trailing P/E, price-to-book, dividend yield, 52-week
//     range) where absent provider fields stay absent rather than degrade
//     to zero values.
//   - Ratio Analysis: Current Ratio, Gross Margin, Net Margin, P/E Ratio,
//     P/B Ratio and Dividend Yield computed from the latest reporting
//     period of the statement tables and the quote.
//   - Orchestration: A sequential per-ticker pipeline that degrades
//     gracefully on provider failures and assembles a per-ticker report.
//
// Everything is computed fresh per invocation and held in memory only;
// nothing is persisted. This package serves as the foundational logic for
// the `fan` command-line tool.
package fundamentals
