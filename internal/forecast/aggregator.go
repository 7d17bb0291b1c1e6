package forecast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Aggregate buckets expense transactions by category and month slot.
// Records outside the window and income records are skipped.
func Aggregate(w Window, txs []Transaction) Aggregation {
	agg := Aggregation{
		ByCategory:  make(map[string]MonthlySums),
		MonthTotals: newMonthlySums(),
	}

	for _, tx := range txs {
		if tx.Type == TransactionTypeIncome {
			continue
		}

		slot, ok := w.Slot(tx.SpentAt)
		if !ok {
			continue
		}

		name := categoryName(tx.CategoryName)
		amount := coerceAmount(tx.Amount)

		sums, found := agg.ByCategory[name]
		if !found {
			sums = newMonthlySums()
		}
		sums[slot] = sums[slot].Add(amount)
		agg.ByCategory[name] = sums

		agg.MonthTotals[slot] = agg.MonthTotals[slot].Add(amount)
	}

	return agg
}

func newMonthlySums() MonthlySums {
	return MonthlySums{decimal.Zero, decimal.Zero, decimal.Zero}
}

func categoryName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UncategorizedName
	}
	return name
}

func coerceAmount(amount decimal.NullDecimal) decimal.Decimal {
	if !amount.Valid || amount.Decimal.IsNegative() {
		return decimal.Zero
	}
	return amount.Decimal
}
