package fundamentals

import (
	"github.com/shopspring/decimal"
)

// Quote is a snapshot of current market-derived metrics for a ticker.
//
// Numeric fields are pointers: a field the provider did not return stays
// nil so downstream consumers can tell "missing" from "zero".
type Quote struct {
	Ticker   string
	Currency string

	Price            *decimal.Decimal
	MarketCap        *decimal.Decimal
	TrailingPE       *decimal.Decimal
	PriceToBook      *decimal.Decimal
	DividendYield    *decimal.Decimal
	FiftyTwoWeekHigh *decimal.Decimal
	FiftyTwoWeekLow  *decimal.Decimal
}
