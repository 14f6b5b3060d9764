package fundamentals

import (
	"fmt"
	"testing"
	"time"
)

// fakeStatements serves canned tables per ticker and statement type and
// records the order of calls.
type fakeStatements struct {
	tables map[string]map[StatementType]Fundamentals
	errs   map[string]error
	calls  []string
}

func (f *fakeStatements) Statements(ticker string, statement StatementType, period string, limit int) (Fundamentals, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s/%s", ticker, statement))
	if err := f.errs[ticker]; err != nil {
		return nil, err
	}
	return f.tables[ticker][statement], nil
}

type fakeQuotes struct {
	quotes map[string]*Quote
	errs   map[string]error
}

func (f *fakeQuotes) Quote(ticker string) (*Quote, error) {
	if err := f.errs[ticker]; err != nil {
		return nil, err
	}
	q, ok := f.quotes[ticker]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", ticker)
	}
	return q, nil
}

func testConfig(tickers ...string) Config {
	cfg := NewConfig("test-key")
	cfg.Tickers = tickers
	return cfg
}

func TestRunSkipsTickerWithoutFundamentals(t *testing.T) {
	d := NewDate(2023, time.December, 31)
	statements := &fakeStatements{
		tables: map[string]map[StatementType]Fundamentals{
			"AAPL": {
				IncomeStatement: {incomeRow(t, d, "1000", "400", "150")},
				BalanceSheet:    {balanceRow(t, d, "500", "250")},
			},
		},
		errs: map[string]error{"FAIL": fmt.Errorf("api down")},
	}
	quotes := &fakeQuotes{quotes: map[string]*Quote{
		"AAPL": {Ticker: "AAPL", TrailingPE: dec(t, "25")},
	}}

	report := Run(testConfig("FAIL", "AAPL"), statements, quotes)

	if got := report.Tickers(); len(got) != 1 || got[0] != "AAPL" {
		t.Fatalf("report tickers = %v, want [AAPL] with FAIL skipped", got)
	}
	if report.Result("FAIL") != nil {
		t.Errorf("failed ticker has a report entry, want none")
	}

	res := report.Result("AAPL")
	if res == nil {
		t.Fatalf("no result for AAPL")
	}
	if !res.Ratios.Has(CurrentRatio) || !res.Ratios.Has(PERatio) {
		t.Errorf("AAPL ratios = %v, want Current Ratio and P/E Ratio present", res.Ratios.Names())
	}
}

func TestRunQuoteFailureKeepsFundamentals(t *testing.T) {
	d := NewDate(2023, time.December, 31)
	statements := &fakeStatements{
		tables: map[string]map[StatementType]Fundamentals{
			"MSFT": {
				IncomeStatement: {incomeRow(t, d, "1000", "400", "150")},
				BalanceSheet:    {balanceRow(t, d, "500", "250")},
			},
		},
	}
	quotes := &fakeQuotes{errs: map[string]error{"MSFT": fmt.Errorf("quote down")}}

	report := Run(testConfig("MSFT"), statements, quotes)

	res := report.Result("MSFT")
	if res == nil {
		t.Fatalf("no result for MSFT, want entry despite quote failure")
	}
	if res.Quote != nil {
		t.Errorf("Quote = %v, want nil after quote failure", res.Quote)
	}
	if !res.Ratios.Has(CurrentRatio) {
		t.Errorf("Current Ratio missing, want fundamentals-only ratios")
	}
	for _, name := range []string{PERatio, PBRatio, DividendYield} {
		if res.Ratios.Has(name) {
			t.Errorf("ratio %q present, want absent without a quote", name)
		}
	}
}

func TestRunPreservesTickerOrder(t *testing.T) {
	d := NewDate(2023, time.December, 31)
	tables := make(map[string]map[StatementType]Fundamentals)
	for _, ticker := range []string{"GOOGL", "AAPL", "MSFT"} {
		tables[ticker] = map[StatementType]Fundamentals{
			IncomeStatement: {incomeRow(t, d, "1000", "400", "150")},
		}
	}
	statements := &fakeStatements{tables: tables}
	quotes := &fakeQuotes{quotes: map[string]*Quote{}}

	report := Run(testConfig("GOOGL", "AAPL", "MSFT"), statements, quotes)

	want := []string{"GOOGL", "AAPL", "MSFT"}
	got := report.Tickers()
	if len(got) != len(want) {
		t.Fatalf("report holds %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ticker[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// One failing statement type degrades to an empty sub-table but the
// remaining statements still form the combined table in report order.
func TestFetchFundamentalsPartialFailure(t *testing.T) {
	d := NewDate(2023, time.December, 31)

	src := &partialStatements{
		good: map[StatementType]Fundamentals{
			IncomeStatement: {incomeRow(t, d, "1000", "400", "150")},
			CashFlow:        {cashFlowRow(t, d, "310")},
		},
		failing: BalanceSheet,
	}

	table := fetchFundamentals(testConfig("AAPL"), src, "AAPL")

	if len(table) != 2 {
		t.Fatalf("combined table has %d rows, want 2", len(table))
	}
	if table[0].Statement != IncomeStatement || table[1].Statement != CashFlow {
		t.Errorf("statement order = %s, %s; want income then cash flow", table[0].Statement, table[1].Statement)
	}
}

type partialStatements struct {
	good    map[StatementType]Fundamentals
	failing StatementType
}

func (p *partialStatements) Statements(ticker string, statement StatementType, period string, limit int) (Fundamentals, error) {
	if statement == p.failing {
		return nil, fmt.Errorf("boom")
	}
	return p.good[statement], nil
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{"defaults with key", func(c *Config) {}, false},
		{"missing key", func(c *Config) { c.APIKey = "" }, true},
		{"no tickers", func(c *Config) { c.Tickers = nil }, true},
		{"quarter period", func(c *Config) { c.Period = "quarter" }, false},
		{"bad period", func(c *Config) { c.Period = "weekly" }, true},
		{"zero limit", func(c *Config) { c.Limit = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig("k")
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.expectErr {
				t.Errorf("Validate() error = %v, want error: %v", err, tc.expectErr)
			}
		})
	}
}
