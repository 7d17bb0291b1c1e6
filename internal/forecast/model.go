package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedName is used for transactions without a category.
const UncategorizedName = "Uncategorized"

// TransactionType distinguishes spending from earnings.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction is a historical record fed into the engine.
// An invalid Amount stands for a missing or non-numeric value.
type Transaction struct {
	Amount       decimal.NullDecimal
	SpentAt      time.Time
	CategoryName string
	Type         TransactionType
}

// MonthSlot indexes the three lookback months, 0 being the most recent.
type MonthSlot int

const (
	SlotLastMonth MonthSlot = iota
	SlotTwoMonthsAgo
	SlotThreeMonthsAgo

	slotCount = 3
)

// MonthlySums holds one sum per MonthSlot.
type MonthlySums [slotCount]decimal.Decimal

// Aggregation is the output of Aggregate.
type Aggregation struct {
	ByCategory  map[string]MonthlySums
	MonthTotals MonthlySums
}

// CategoryForecast is the predicted spending for one category.
type CategoryForecast struct {
	Name      string
	Predicted decimal.Decimal
}

// Range is the spread of nonzero monthly totals in the lookback window.
type Range struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// Result is the next-month forecast.
type Result struct {
	PredictedTotal decimal.Decimal
	ByCategory     []CategoryForecast
	Range          Range
}

// InsufficientHistory reports whether the window held no expenses at all.
func (r Result) InsufficientHistory() bool {
	return len(r.ByCategory) == 0
}
