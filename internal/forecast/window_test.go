package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow_MidYear(t *testing.T) {
	w := ResolveWindow(time.Date(2025, 7, 15, 18, 45, 0, 0, time.UTC))

	assert.Equal(t, date(2025, 7, 1), w.ThisMonthStart)
	assert.Equal(t, date(2025, 6, 1), w.M1)
	assert.Equal(t, date(2025, 5, 1), w.M2)
	assert.Equal(t, date(2025, 4, 1), w.M3)
	assert.Equal(t, w.M3, w.Start())
	assert.Equal(t, w.ThisMonthStart, w.End())
}

func TestResolveWindow_CrossesYearBoundary(t *testing.T) {
	w := ResolveWindow(time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, date(2025, 2, 1), w.ThisMonthStart)
	assert.Equal(t, date(2025, 1, 1), w.M1)
	assert.Equal(t, date(2024, 12, 1), w.M2)
	assert.Equal(t, date(2024, 11, 1), w.M3)
}

func TestResolveWindow_FirstDayOfMonth(t *testing.T) {
	w := ResolveWindow(date(2025, 3, 1))

	assert.Equal(t, date(2025, 3, 1), w.ThisMonthStart)
	assert.Equal(t, date(2025, 2, 1), w.M1)
}

func TestResolveWindow_UsesLocationOfNow(t *testing.T) {
	tashkent := time.FixedZone("UZT", 5*60*60)
	// 2025-03-01 00:30 in Tashkent is still February in UTC.
	now := time.Date(2025, 3, 1, 0, 30, 0, 0, tashkent)

	assert.Equal(t, date(2025, 3, 1), ResolveWindow(now).ThisMonthStart)
	assert.Equal(t, date(2025, 2, 1), ResolveWindow(now.UTC()).ThisMonthStart)
}

func TestWindowSlot(t *testing.T) {
	w := ResolveWindow(date(2025, 1, 20))

	cases := []struct {
		name     string
		spentAt  time.Time
		wantSlot MonthSlot
		wantOK   bool
	}{
		{"last month first day", date(2024, 12, 1), SlotLastMonth, true},
		{"last month last day", date(2024, 12, 31), SlotLastMonth, true},
		{"two months ago", date(2024, 11, 15), SlotTwoMonthsAgo, true},
		{"three months ago", date(2024, 10, 1), SlotThreeMonthsAgo, true},
		{"current month", date(2025, 1, 5), 0, false},
		{"four months ago", date(2024, 9, 30), 0, false},
		{"same month previous year", date(2023, 12, 10), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, ok := w.Slot(tc.spentAt)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantSlot, slot)
			}
		})
	}
}
