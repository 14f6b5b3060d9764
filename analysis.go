package fundamentals

// Analyze computes the ratio set for one ticker from its combined
// statement table and its market quote (which may be nil).
//
// A ratio appears in the result only when every input it needs is present
// and its denominator is non-zero; there is no sentinel for "not
// computable". The result order matches the report layout: liquidity,
// margins, then market ratios.
func Analyze(f Fundamentals, q *Quote) RatioSet {
	var ratios RatioSet

	// Liquidity is computed on the single globally-latest reporting date,
	// whatever statement the rows belong to. The first row on that date
	// carrying both balance-sheet fields decides.
	for _, row := range f.AtDate(f.LatestDate()) {
		if row.TotalCurrentAssets == nil || row.TotalCurrentLiabilities == nil {
			continue
		}
		if !row.TotalCurrentLiabilities.IsZero() {
			ratios.Add(CurrentRatio, row.TotalCurrentAssets.Div(*row.TotalCurrentLiabilities))
		}
		break
	}

	// Margins come from the latest income statement only.
	income := f.ByStatement(IncomeStatement)
	for _, row := range income.AtDate(income.LatestDate()) {
		if row.Revenue == nil {
			continue
		}
		if !row.Revenue.IsZero() {
			if row.GrossProfit != nil {
				ratios.Add(GrossMargin, row.GrossProfit.Div(*row.Revenue))
			}
			if row.NetIncome != nil {
				ratios.Add(NetMargin, row.NetIncome.Div(*row.Revenue))
			}
		}
		break
	}

	// Market ratios are copied from the quote untransformed.
	if q != nil {
		if q.TrailingPE != nil {
			ratios.Add(PERatio, *q.TrailingPE)
		}
		if q.PriceToBook != nil {
			ratios.Add(PBRatio, *q.PriceToBook)
		}
		if q.DividendYield != nil {
			ratios.Add(DividendYield, *q.DividendYield)
		}
	}

	return ratios
}
