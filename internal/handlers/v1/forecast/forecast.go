package forecast

import (
	"time"

	engine "github.com/carson-networks/budget-forecast/internal/forecast"
)

// CategoryForecast is one category's predicted spending.
type CategoryForecast struct {
	Name      string `json:"name" doc:"Category name"`
	Predicted string `json:"predicted" doc:"Predicted decimal amount"`
}

// Range is the expected low/high monthly total.
type Range struct {
	Low  string `json:"low" doc:"Lowest nonzero monthly total in the window"`
	High string `json:"high" doc:"Highest monthly total in the window"`
}

// Window is the half-open date range the forecast was computed from.
type Window struct {
	Start string `json:"start" format:"date" doc:"First day of the oldest month, inclusive"`
	End   string `json:"end" format:"date" doc:"First day of the current month, exclusive"`
}

// NextMonthForecast is the API model for a next-month forecast.
type NextMonthForecast struct {
	PredictedTotal      string             `json:"predictedTotal" doc:"Sum of the category predictions"`
	ByCategory          []CategoryForecast `json:"byCategory" doc:"Per-category predictions, largest first"`
	Range               Range              `json:"range"`
	InsufficientHistory bool               `json:"insufficientHistory" doc:"True when no expenses fell in the window"`
	Window              Window             `json:"window"`
}

// NewNextMonthForecast converts an engine result to its API model.
func NewNextMonthForecast(result *engine.Result, window engine.Window) NextMonthForecast {
	out := NextMonthForecast{
		PredictedTotal: result.PredictedTotal.String(),
		ByCategory:     make([]CategoryForecast, len(result.ByCategory)),
		Range: Range{
			Low:  result.Range.Low.String(),
			High: result.Range.High.String(),
		},
		InsufficientHistory: result.InsufficientHistory(),
		Window: Window{
			Start: window.Start().Format(time.DateOnly),
			End:   window.End().Format(time.DateOnly),
		},
	}
	for i, c := range result.ByCategory {
		out.ByCategory[i] = CategoryForecast{Name: c.Name, Predicted: c.Predicted.String()}
	}
	return out
}
