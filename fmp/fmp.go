// Package fmp accesses financial statements on the Financial Modeling Prep
// API and converts them into typed statement rows.
package fmp

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/shopspring/decimal"
)

const host = "https://financialmodelingprep.com"

// Client queries the Financial Modeling Prep statement endpoints.
type Client struct {
	Key    string       // API key, sent as the apikey query parameter
	Host   string       // base URL, defaults to the public host
	Client *http.Client // defaults to a plain http.Client
}

// NewClient returns a client for the public Financial Modeling Prep host.
func NewClient(key string) *Client { return &Client{Key: key} }

func (c *Client) host() string {
	if c.Host == "" {
		return host
	}
	return c.Host
}

func (c *Client) client() *http.Client {
	if c.Client == nil {
		return new(http.Client)
	}
	return c.Client
}

// endpoint returns the API path segment serving a statement type.
func endpoint(statement fundamentals.StatementType) (string, error) {
	switch statement {
	case fundamentals.IncomeStatement:
		return "income-statement", nil
	case fundamentals.BalanceSheet:
		return "balance-sheet-statement", nil
	case fundamentals.CashFlow:
		return "cash-flow-statement", nil
	}
	return "", fmt.Errorf("unknown statement type %q", statement)
}

// row is the provider payload for one reporting period. The three
// statement endpoints share one row shape with disjoint populated fields;
// numbers are pointers so absent fields survive as nil.
type row struct {
	Date   string `json:"date"`
	Symbol string `json:"symbol"`

	Revenue         *decimal.Decimal `json:"revenue"`
	GrossProfit     *decimal.Decimal `json:"grossProfit"`
	OperatingIncome *decimal.Decimal `json:"operatingIncome"`
	NetIncome       *decimal.Decimal `json:"netIncome"`
	EPS             *decimal.Decimal `json:"eps"`

	TotalCurrentAssets      *decimal.Decimal `json:"totalCurrentAssets"`
	TotalCurrentLiabilities *decimal.Decimal `json:"totalCurrentLiabilities"`
	TotalAssets             *decimal.Decimal `json:"totalAssets"`
	TotalLiabilities        *decimal.Decimal `json:"totalLiabilities"`
	TotalStockholdersEquity *decimal.Decimal `json:"totalStockholdersEquity"`

	OperatingCashFlow  *decimal.Decimal `json:"operatingCashFlow"`
	CapitalExpenditure *decimal.Decimal `json:"capitalExpenditure"`
	FreeCashFlow       *decimal.Decimal `json:"freeCashFlow"`
}

// Statements fetches one statement table for a ticker.
//
// Rows failing validation for their statement type are quarantined: logged
// and excluded from the returned table. Transport failures, non-2xx
// statuses and non-array bodies are errors and yield no table.
func (c *Client) Statements(ticker string, statement fundamentals.StatementType, period string, limit int) (fundamentals.Fundamentals, error) {
	// https://financialmodelingprep.com/api/v3/income-statement/AAPL?period=annual&limit=3&apikey=demo
	// [
	//
	//	{
	//		"date": "2023-09-30",
	//		"symbol": "AAPL",
	//		"reportedCurrency": "USD",
	//		"calendarYear": "2023",
	//		"period": "FY",
	//		"revenue": 383285000000,
	//		"grossProfit": 169148000000,
	//		"operatingIncome": 114301000000,
	//		"netIncome": 96995000000,
	//		"eps": 6.16
	//	  },

	path, err := endpoint(statement)
	if err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s/api/v3/%s/%s?period=%s&limit=%d&apikey=%s",
		c.host(), path, url.PathEscape(strings.ToUpper(ticker)),
		url.QueryEscape(period), limit, url.QueryEscape(c.Key))

	// that's the payload
	content := make([]row, 0)
	if err := jwget(c.client(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot retrieve %s for %q: %w", path, ticker, err)
	}

	table, quarantined := convert(statement, content)
	if quarantined != nil {
		log.Printf("quarantined %s rows for %q: %v", statement, ticker, quarantined)
	}
	return table, nil
}

// convert turns payload rows into statement rows, quarantining the invalid
// ones into a joined error.
func convert(statement fundamentals.StatementType, content []row) (fundamentals.Fundamentals, error) {
	var table fundamentals.Fundamentals
	var errs error
	for _, r := range content {
		sr, err := r.statementRow(statement)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		table = append(table, sr)
	}
	return table, errs
}

// statementRow validates the payload row for its statement type and maps
// the type's own field group, leaving the other groups nil.
func (r row) statementRow(statement fundamentals.StatementType) (fundamentals.StatementRow, error) {
	date, err := fundamentals.ParseDate(r.Date)
	if err != nil || date.IsZero() {
		return fundamentals.StatementRow{}, fmt.Errorf("%s row without a usable date (%q)", statement, r.Date)
	}

	sr := fundamentals.StatementRow{Statement: statement, Date: date}
	switch statement {
	case fundamentals.IncomeStatement:
		if r.Revenue == nil {
			return fundamentals.StatementRow{}, fmt.Errorf("income row %s misses revenue", date)
		}
		sr.Revenue = r.Revenue
		sr.GrossProfit = r.GrossProfit
		sr.OperatingIncome = r.OperatingIncome
		sr.NetIncome = r.NetIncome
		sr.EPS = r.EPS
	case fundamentals.BalanceSheet:
		if r.TotalCurrentAssets == nil || r.TotalCurrentLiabilities == nil {
			return fundamentals.StatementRow{}, fmt.Errorf("balance row %s misses current assets or liabilities", date)
		}
		sr.TotalCurrentAssets = r.TotalCurrentAssets
		sr.TotalCurrentLiabilities = r.TotalCurrentLiabilities
		sr.TotalAssets = r.TotalAssets
		sr.TotalLiabilities = r.TotalLiabilities
		sr.TotalStockholdersEquity = r.TotalStockholdersEquity
	case fundamentals.CashFlow:
		if r.OperatingCashFlow == nil {
			return fundamentals.StatementRow{}, fmt.Errorf("cash-flow row %s misses operating cash flow", date)
		}
		sr.OperatingCashFlow = r.OperatingCashFlow
		sr.CapitalExpenditure = r.CapitalExpenditure
		sr.FreeCashFlow = r.FreeCashFlow
	}
	return sr, nil
}
