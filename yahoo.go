package fundamentals

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "quoteSummary": {
	        "result": [
	            {
	                "price": {
	                    "symbol": "AAPL",
	                    "currency": "USD",
	                    "regularMarketPrice": { "raw": 189.5, "fmt": "189.50" },
	                    "marketCap": { "raw": 2950000000000, "fmt": "2.95T" }
	                },
	                "summaryDetail": {
	                    "trailingPE": { "raw": 29.11 },
	                    "dividendYield": { "raw": 0.0044 },
	                    "fiftyTwoWeekHigh": { "raw": 199.62 },
	                    "fiftyTwoWeekLow": { "raw": 164.08 }
	                },
	                "defaultKeyStatistics": {
	                    "priceToBook": { "raw": 47.35 }
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/
const yahooHost = "https://query1.finance.yahoo.com"

// Yahoo rejects requests from the default Go user agent.
var yahooHeader = http.Header{
	"User-Agent": []string{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"},
}

// YahooQuotes fetches market snapshots from the Yahoo Finance quoteSummary
// endpoint. The zero value is ready to use against the public host.
type YahooQuotes struct {
	Host   string       // base URL, defaults to the public Yahoo host
	Client *http.Client // defaults to a plain http.Client
}

// NewYahooQuotes returns a quote source backed by the public Yahoo host.
func NewYahooQuotes() *YahooQuotes { return &YahooQuotes{} }

func (y *YahooQuotes) host() string {
	if y.Host == "" {
		return yahooHost
	}
	return y.Host
}

func (y *YahooQuotes) client() *http.Client {
	if y.Client == nil {
		return new(http.Client)
	}
	return y.Client
}

// Quote returns the current market snapshot for the ticker. Fields absent
// from the payload are left nil on the result; only transport failures and
// payloads without a result object are errors.
func (y *YahooQuotes) Quote(ticker string) (*Quote, error) {
	addr := y.host() + "/v10/finance/quoteSummary/" + url.PathEscape(ticker) +
		"?modules=price,summaryDetail,defaultKeyStatistics"

	var jobj any
	if err := jwget(y.client(), addr, yahooHeader, &jobj); err != nil {
		return nil, fmt.Errorf("cannot retrieve quote for %q: %w", ticker, err)
	}
	return parseQuoteSummary(ticker, jobj)
}

// parseQuoteSummary extracts the seven quote fields from a decoded
// quoteSummary payload.
func parseQuoteSummary(ticker string, jobj any) (*Quote, error) {
	if _, err := jsonpath.Get("$.quoteSummary.result[0]", jobj); err != nil {
		return nil, fmt.Errorf("unexpected quote payload for %q: %w", ticker, err)
	}

	q := &Quote{Ticker: ticker, Currency: "USD"}
	if cur := jsonText(jobj, "$.quoteSummary.result[0].price.currency"); cur != "" {
		q.Currency = cur
	}
	q.Price = jsonDecimal(jobj, "$.quoteSummary.result[0].price.regularMarketPrice.raw")
	q.MarketCap = jsonDecimal(jobj, "$.quoteSummary.result[0].price.marketCap.raw")
	q.TrailingPE = jsonDecimal(jobj, "$.quoteSummary.result[0].summaryDetail.trailingPE.raw")
	q.PriceToBook = jsonDecimal(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.priceToBook.raw")
	q.DividendYield = jsonDecimal(jobj, "$.quoteSummary.result[0].summaryDetail.dividendYield.raw")
	q.FiftyTwoWeekHigh = jsonDecimal(jobj, "$.quoteSummary.result[0].summaryDetail.fiftyTwoWeekHigh.raw")
	q.FiftyTwoWeekLow = jsonDecimal(jobj, "$.quoteSummary.result[0].summaryDetail.fiftyTwoWeekLow.raw")
	return q, nil
}

// jsonDecimal reads the numeric value at path, or nil when the path is
// missing or not numeric. Missing provider fields stay missing.
func jsonDecimal(jobj any, path string) *decimal.Decimal {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return nil
	}
	d := decimal.NewFromFloat(val)
	return &d
}

// jsonText reads the string value at path, or "" when missing.
func jsonText(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
