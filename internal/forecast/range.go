package forecast

import "github.com/shopspring/decimal"

// EstimateRange returns the min and max of the nonzero monthly totals.
// With no spending at all both bounds are zero.
func EstimateRange(totals MonthlySums) Range {
	var nonZero []decimal.Decimal
	for _, total := range totals {
		if !total.IsZero() {
			nonZero = append(nonZero, total)
		}
	}

	if len(nonZero) == 0 {
		return Range{Low: decimal.Zero, High: decimal.Zero}
	}

	return Range{
		Low:  decimal.Min(nonZero[0], nonZero[1:]...),
		High: decimal.Max(nonZero[0], nonZero[1:]...),
	}
}
