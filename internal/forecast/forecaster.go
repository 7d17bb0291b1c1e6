package forecast

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Weights are the recency weights applied to the month slots, most recent
// first. They sum to exactly one.
var Weights = MonthlySums{
	decimal.RequireFromString("0.5"),
	decimal.RequireFromString("0.3"),
	decimal.RequireFromString("0.2"),
}

// Predict returns the weighted next-month amount for one set of monthly sums.
func Predict(sums MonthlySums) decimal.Decimal {
	predicted := decimal.Zero
	for slot, weight := range Weights {
		predicted = predicted.Add(sums[slot].Mul(weight))
	}
	return predicted
}

// ForecastCategories predicts every category in agg, including categories
// whose sums are all zero, and returns them sorted by prediction descending
// (name ascending on ties) together with their total.
func ForecastCategories(agg Aggregation) ([]CategoryForecast, decimal.Decimal) {
	byCategory := make([]CategoryForecast, 0, len(agg.ByCategory))
	for name, sums := range agg.ByCategory {
		byCategory = append(byCategory, CategoryForecast{
			Name:      name,
			Predicted: Predict(sums),
		})
	}

	slices.SortFunc(byCategory, func(a, b CategoryForecast) int {
		if c := b.Predicted.Cmp(a.Predicted); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	total := decimal.Zero
	for _, c := range byCategory {
		total = total.Add(c.Predicted)
	}

	return byCategory, total
}
