package fundamentals

import (
	"github.com/shopspring/decimal"
)

// StatementType identifies one of the three reported financial statements.
// Its value is the human-readable label used in tables and reports.
type StatementType string

const (
	IncomeStatement StatementType = "Income Statement"
	BalanceSheet    StatementType = "Balance Sheet"
	CashFlow        StatementType = "Cash Flow"
)

// StatementTypes returns the three statement types in report order:
// income statement, then balance sheet, then cash flow.
func StatementTypes() []StatementType {
	return []StatementType{IncomeStatement, BalanceSheet, CashFlow}
}

// StatementRow holds one reporting period of one statement type.
//
// Numeric fields are pointers: a field the provider did not report is nil,
// never zero. Each statement type populates its own group of fields and
// leaves the others nil.
type StatementRow struct {
	Statement StatementType
	Date      Date

	// Income statement fields.
	Revenue         *decimal.Decimal
	GrossProfit     *decimal.Decimal
	OperatingIncome *decimal.Decimal
	NetIncome       *decimal.Decimal
	EPS             *decimal.Decimal

	// Balance sheet fields.
	TotalCurrentAssets      *decimal.Decimal
	TotalCurrentLiabilities *decimal.Decimal
	TotalAssets             *decimal.Decimal
	TotalLiabilities        *decimal.Decimal
	TotalStockholdersEquity *decimal.Decimal

	// Cash flow fields.
	OperatingCashFlow  *decimal.Decimal
	CapitalExpenditure *decimal.Decimal
	FreeCashFlow       *decimal.Decimal
}

// Fundamentals is a table of statement rows for one ticker, the union of
// the rows of all three statement types. Row order within a statement type
// is the provider's order; statement types follow StatementTypes order.
type Fundamentals []StatementRow

// ByStatement returns the rows labeled with the given statement type,
// preserving their order.
func (f Fundamentals) ByStatement(t StatementType) Fundamentals {
	var rows Fundamentals
	for _, r := range f {
		if r.Statement == t {
			rows = append(rows, r)
		}
	}
	return rows
}

// LatestDate returns the maximum date over all rows, or the zero Date when
// the table is empty.
func (f Fundamentals) LatestDate() Date {
	var latest Date
	for _, r := range f {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest
}

// AtDate returns the rows reported exactly on the given date, preserving
// their order.
func (f Fundamentals) AtDate(d Date) Fundamentals {
	var rows Fundamentals
	for _, r := range f {
		if r.Date == d {
			rows = append(rows, r)
		}
	}
	return rows
}

// Dates returns the distinct reporting dates in order of first appearance.
func (f Fundamentals) Dates() []Date {
	var dates []Date
	seen := make(map[Date]bool)
	for _, r := range f {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	return dates
}
