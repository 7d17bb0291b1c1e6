// Package report renders a next-month forecast as a terminal table.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/carson-networks/budget-forecast/internal/forecast"
)

var hundred = decimal.NewFromInt(100)

// Options controls how amounts are printed.
type Options struct {
	// Currency is appended to every amount, e.g. "UZS".
	Currency string
	// Locale is a BCP 47 tag used for digit grouping. Unparseable tags fall
	// back to English.
	Locale string
}

type formatter struct {
	currency     string
	printer      *message.Printer
	decimalPoint string
}

func newFormatter(opts Options) formatter {
	tag, err := language.Parse(opts.Locale)
	if err != nil || opts.Locale == "" {
		tag = language.English
	}
	printer := message.NewPrinter(tag)
	return formatter{
		currency:     strings.ToUpper(strings.TrimSpace(opts.Currency)),
		printer:      printer,
		decimalPoint: strings.Trim(printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))), "15"),
	}
}

// amount groups the whole part per locale and keeps up to two exact
// fraction digits.
func (f formatter) amount(d decimal.Decimal) string {
	d = d.Round(2)
	whole := d.Truncate(0)

	formatted := f.printer.Sprintf("%d", whole.IntPart())
	if d.IsNegative() && whole.IsZero() {
		formatted = "-" + formatted
	}
	if fraction := d.Sub(whole).Abs(); !fraction.IsZero() {
		formatted += f.decimalPoint + strings.TrimRight(fraction.StringFixed(2)[2:], "0")
	}

	if f.currency == "" {
		return formatted
	}
	return formatted + " " + f.currency
}

// share is the category's percentage of the total with one decimal place.
func share(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0%"
	}
	return part.Mul(hundred).Div(total).StringFixed(1) + "%"
}

// Render writes the forecast for the month after window.End() to w.
func Render(w io.Writer, result *forecast.Result, window forecast.Window, opts Options) {
	f := newFormatter(opts)
	target := window.End().AddDate(0, 1, 0)

	if result == nil || result.InsufficientHistory() {
		fmt.Fprintf(w, "No expenses between %s and %s, nothing to forecast for %s.\n",
			window.Start().Format(time.DateOnly),
			window.End().AddDate(0, 0, -1).Format(time.DateOnly),
			target.Format("January 2006"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Forecast for %s", target.Format("January 2006"))
	t.AppendHeader(table.Row{"Category", "Predicted", "Share"})

	for _, c := range result.ByCategory {
		t.AppendRow(table.Row{c.Name, f.amount(c.Predicted), share(c.Predicted, result.PredictedTotal)})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(f.amount(result.PredictedTotal)), ""})
	t.AppendFooter(table.Row{"Range", f.amount(result.Range.Low) + " - " + f.amount(result.Range.High), ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	t.Render()
}
