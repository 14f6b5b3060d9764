package fundamentals

import (
	"github.com/shopspring/decimal"
)

// Names of the ratios produced by Analyze, in report order.
const (
	CurrentRatio  = "Current Ratio"
	GrossMargin   = "Gross Margin"
	NetMargin     = "Net Margin"
	PERatio       = "P/E Ratio"
	PBRatio       = "P/B Ratio"
	DividendYield = "Dividend Yield"
)

// Ratio is a single named metric derived from fundamental or market fields.
type Ratio struct {
	Name  string
	Value decimal.Decimal
}

// RatioSet is an ordered collection of computed ratios. A ratio missing its
// inputs is simply not in the set; there are no sentinel values. Order is
// insertion order, which Analyze aligns with the report layout.
type RatioSet []Ratio

// Add appends a named ratio to the set.
func (s *RatioSet) Add(name string, value decimal.Decimal) {
	*s = append(*s, Ratio{Name: name, Value: value})
}

// Lookup returns the value of the named ratio and whether it is present.
func (s RatioSet) Lookup(name string) (decimal.Decimal, bool) {
	for _, r := range s {
		if r.Name == name {
			return r.Value, true
		}
	}
	return decimal.Decimal{}, false
}

// Has reports whether the named ratio is present.
func (s RatioSet) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the ratio names in set order.
func (s RatioSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.Name)
	}
	return names
}
