// Package forecast predicts next month's spending from the three previous
// calendar months of expense history.
//
// The engine is a pure pipeline: Aggregate buckets the transactions, then
// ForecastCategories applies the recency Weights and EstimateRange derives a
// low/high band from the monthly totals. It performs no I/O; fetching the
// history for Window.Start() to Window.End() is the caller's job.
package forecast

// Compute runs the full pipeline over txs for the given window.
func Compute(w Window, txs []Transaction) Result {
	agg := Aggregate(w, txs)
	byCategory, total := ForecastCategories(agg)

	return Result{
		PredictedTotal: total,
		ByCategory:     byCategory,
		Range:          EstimateRange(agg.MonthTotals),
	}
}
