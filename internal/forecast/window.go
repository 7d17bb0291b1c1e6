package forecast

import "time"

// Window is the lookback period used for forecasting: the three full calendar
// months before the month containing the reference instant. All dates are
// first-of-month calendar dates at UTC midnight.
type Window struct {
	ThisMonthStart time.Time
	M1             time.Time
	M2             time.Time
	M3             time.Time
}

// ResolveWindow computes the lookback window for now. The calendar month is
// taken in now's own location, so callers control the user's timezone by
// converting now before calling.
func ResolveWindow(now time.Time) Window {
	year, month, _ := now.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Window{
		ThisMonthStart: start,
		M1:             start.AddDate(0, -1, 0),
		M2:             start.AddDate(0, -2, 0),
		M3:             start.AddDate(0, -3, 0),
	}
}

// Start is the inclusive lower bound of the window.
func (w Window) Start() time.Time {
	return w.M3
}

// End is the exclusive upper bound of the window.
func (w Window) End() time.Time {
	return w.ThisMonthStart
}

// Slot maps a calendar date onto its month slot. The second return value is
// false when the date falls outside the three lookback months.
func (w Window) Slot(t time.Time) (MonthSlot, bool) {
	switch monthKey(t) {
	case monthKey(w.M1):
		return SlotLastMonth, true
	case monthKey(w.M2):
		return SlotTwoMonthsAgo, true
	case monthKey(w.M3):
		return SlotThreeMonthsAgo, true
	}
	return 0, false
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}
