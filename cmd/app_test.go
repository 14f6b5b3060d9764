package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/finlens/fundamentals"
)

// parseCfg registers the shared flags on a fresh flag set and parses args.
func parseCfg(t *testing.T, args ...string) *cfgFlags {
	t.Helper()
	cfg := &cfgFlags{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.setFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse flags %v: %v", args, err)
	}
	return cfg
}

func TestSplitTickers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AAPL", "AAPL"},
		{"aapl, msft", "AAPL,MSFT"},
		{" aapl ,,msft, ", "AAPL,MSFT"},
		{"", ""},
		{",,", ""},
	}
	for _, tt := range tests {
		got := strings.Join(splitTickers(tt.in), ",")
		if got != tt.want {
			t.Errorf("splitTickers(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		in      string
		want    fundamentals.StatementType
		wantErr bool
	}{
		{"income", fundamentals.IncomeStatement, false},
		{"Balance", fundamentals.BalanceSheet, false},
		{" cashflow ", fundamentals.CashFlow, false},
		{"cash-flow", fundamentals.CashFlow, false},
		{"quarterly", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseStatement(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseStatement(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseStatement(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv(fmp_api_key, "")

	cfg, err := parseCfg(t, "-api-key", "demo").config()
	if err != nil {
		t.Fatalf("config() returned error: %v", err)
	}
	if cfg.APIKey != "demo" {
		t.Errorf("APIKey = %q; want %q", cfg.APIKey, "demo")
	}
	if got, want := strings.Join(cfg.Tickers, ","), strings.Join(fundamentals.DefaultTickers, ","); got != want {
		t.Errorf("Tickers = %q; want %q", got, want)
	}
	if cfg.Period != fundamentals.DefaultPeriod {
		t.Errorf("Period = %q; want %q", cfg.Period, fundamentals.DefaultPeriod)
	}
	if cfg.Limit != fundamentals.DefaultLimit {
		t.Errorf("Limit = %d; want %d", cfg.Limit, fundamentals.DefaultLimit)
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg, err := parseCfg(t, "-api-key", "demo", "-tickers", "aapl, msft", "-period", "quarter", "-limit", "5").config()
	if err != nil {
		t.Fatalf("config() returned error: %v", err)
	}
	if got := strings.Join(cfg.Tickers, ","); got != "AAPL,MSFT" {
		t.Errorf("Tickers = %q; want %q", got, "AAPL,MSFT")
	}
	if cfg.Period != "quarter" {
		t.Errorf("Period = %q; want %q", cfg.Period, "quarter")
	}
	if cfg.Limit != 5 {
		t.Errorf("Limit = %d; want 5", cfg.Limit)
	}
}

func TestConfigKeyFromEnv(t *testing.T) {
	t.Setenv(fmp_api_key, "from-env")

	cfg, err := parseCfg(t).config()
	if err != nil {
		t.Fatalf("config() returned error: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q; want %q", cfg.APIKey, "from-env")
	}
}

func TestConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv(fmp_api_key, "from-env")

	cfg, err := parseCfg(t, "-api-key", "from-flag").config()
	if err != nil {
		t.Fatalf("config() returned error: %v", err)
	}
	if cfg.APIKey != "from-flag" {
		t.Errorf("APIKey = %q; want %q", cfg.APIKey, "from-flag")
	}
}

func TestConfigMissingKey(t *testing.T) {
	t.Setenv(fmp_api_key, "")

	if _, err := parseCfg(t).config(); err == nil {
		t.Error("config() without a key should return an error")
	}
}

func TestConfigRejectsUnknownPeriod(t *testing.T) {
	if _, err := parseCfg(t, "-api-key", "demo", "-period", "monthly").config(); err == nil {
		t.Error("config() with period 'monthly' should return an error")
	}
}
