package fundamentals

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in a given currency, used to render market
// figures like prices and capitalizations.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// M builds a Money from a numeric value and an ISO currency code.
func M[T float64 | int64 | decimal.Decimal](value T, currency string) Money {
	var v decimal.Decimal
	switch x := any(value).(type) {
	case float64:
		v = decimal.NewFromFloat(x)
	case int64:
		v = decimal.NewFromInt(x)
	case decimal.Decimal:
		v = x
	}
	return Money{value: v, cur: currency}
}

// currency resolves the full currency definition, falling back to the
// library default for unknown codes.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's symbol and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

// Equal reports whether two Money values have the same amount and currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// AsFloat returns the amount as a float64, losing precision if needed.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
