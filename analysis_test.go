package fundamentals

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func fullQuote(t *testing.T, pe, pb, yield string) *Quote {
	t.Helper()
	return &Quote{
		Ticker:        "AAPL",
		Currency:      "USD",
		Price:         dec(t, "189.50"),
		MarketCap:     dec(t, "2950000000000"),
		TrailingPE:    dec(t, pe),
		PriceToBook:   dec(t, pb),
		DividendYield: dec(t, yield),
	}
}

// A table with both statements on the same date and a fully populated quote
// must produce exactly the six ratios, with the balance-sheet row feeding
// the liquidity ratio even though an income row comes first on that date.
func TestAnalyzeFullInputs(t *testing.T) {
	d := NewDate(2023, time.December, 31)
	table := Fundamentals{
		incomeRow(t, d, "1000", "400", "150"),
		balanceRow(t, d, "500", "250"),
	}
	quote := fullQuote(t, "25.0", "8.0", "0.005")

	ratios := Analyze(table, quote)

	wantNames := []string{CurrentRatio, GrossMargin, NetMargin, PERatio, PBRatio, DividendYield}
	gotNames := ratios.Names()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("Analyze returned ratios %v, want exactly %v", gotNames, wantNames)
	}
	for i := range wantNames {
		if gotNames[i] != wantNames[i] {
			t.Errorf("ratio[%d] = %q, want %q", i, gotNames[i], wantNames[i])
		}
	}

	wantDisplay := map[string]string{
		CurrentRatio:  "2.00",
		GrossMargin:   "0.40",
		NetMargin:     "0.15",
		PERatio:       "25.00",
		PBRatio:       "8.00",
		DividendYield: "0.01",
	}
	for name, want := range wantDisplay {
		v, ok := ratios.Lookup(name)
		if !ok {
			t.Fatalf("ratio %q missing from result", name)
		}
		if got := v.StringFixed(2); got != want {
			t.Errorf("%s = %s, want %s", name, got, want)
		}
	}
}

// Without income rows the margins must be absent while the liquidity ratio
// is still computed from the balance sheet.
func TestAnalyzeWithoutIncomeStatement(t *testing.T) {
	d := NewDate(2023, time.December, 31)
	table := Fundamentals{
		balanceRow(t, d, "500", "250"),
		cashFlowRow(t, d, "310"),
	}

	ratios := Analyze(table, nil)

	if !ratios.Has(CurrentRatio) {
		t.Errorf("Current Ratio missing, want present")
	}
	for _, name := range []string{GrossMargin, NetMargin, PERatio, PBRatio, DividendYield} {
		if ratios.Has(name) {
			t.Errorf("ratio %q present, want absent", name)
		}
	}
}

// When the balance sheet lags the income statement, the globally-latest
// date carries no balance fields and the liquidity ratio must be absent,
// while margins still come from the latest income row.
func TestAnalyzeStaleBalanceSheet(t *testing.T) {
	newer := NewDate(2023, time.December, 31)
	older := NewDate(2022, time.December, 31)
	table := Fundamentals{
		incomeRow(t, newer, "1000", "400", "150"),
		balanceRow(t, older, "500", "250"),
	}

	ratios := Analyze(table, nil)

	if ratios.Has(CurrentRatio) {
		t.Errorf("Current Ratio present, want absent when only older balance rows exist")
	}
	if v, ok := ratios.Lookup(GrossMargin); !ok || v.StringFixed(2) != "0.40" {
		t.Errorf("Gross Margin = %v (present=%v), want 0.40", v, ok)
	}
}

func TestAnalyzeGuards(t *testing.T) {
	d := NewDate(2023, time.December, 31)

	testCases := []struct {
		name   string
		table  Fundamentals
		quote  *Quote
		absent []string
	}{
		{
			name:   "zero current liabilities",
			table:  Fundamentals{balanceRow(t, d, "500", "0")},
			absent: []string{CurrentRatio},
		},
		{
			name: "zero revenue",
			table: Fundamentals{
				incomeRow(t, d, "0", "400", "150"),
			},
			absent: []string{GrossMargin, NetMargin},
		},
		{
			name: "nil gross profit",
			table: Fundamentals{
				{Statement: IncomeStatement, Date: d, Revenue: dec(t, "1000"), NetIncome: dec(t, "150")},
			},
			absent: []string{GrossMargin},
		},
		{
			name:   "quote without dividend yield",
			table:  Fundamentals{balanceRow(t, d, "500", "250")},
			quote:  &Quote{Ticker: "BRK-B", TrailingPE: dec(t, "10"), PriceToBook: dec(t, "1.5")},
			absent: []string{DividendYield},
		},
		{
			name:   "empty table and nil quote",
			table:  nil,
			absent: []string{CurrentRatio, GrossMargin, NetMargin, PERatio, PBRatio, DividendYield},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ratios := Analyze(tc.table, tc.quote)
			for _, name := range tc.absent {
				if ratios.Has(name) {
					t.Errorf("ratio %q present, want absent", name)
				}
			}
		})
	}
}

// The quote row is copied untransformed: the set holds the raw value, the
// two-decimal rounding happens only at display time.
func TestAnalyzeKeepsRawQuoteValues(t *testing.T) {
	quote := &Quote{Ticker: "MSFT", DividendYield: dec(t, "0.0044")}
	ratios := Analyze(nil, quote)

	v, ok := ratios.Lookup(DividendYield)
	if !ok {
		t.Fatalf("Dividend Yield missing from result")
	}
	if want := decimal.RequireFromString("0.0044"); !v.Equal(want) {
		t.Errorf("Dividend Yield = %s, want raw %s", v, want)
	}
}
