// Package insights is the aggregation engine behind the spending, budget and
// wallet screens and the scheduled notification job. Everything in it is pure
// computation over records the caller has already fetched: no I/O, no shared
// state, each call works on locally scoped accumulators.
package insights

import (
	"fmt"
	"time"
)

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the calendar-month period containing t.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Second),
	}
}

// Contains reports whether t falls inside the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// monthStarts returns the first day of each of the trailing n calendar months
// ending with the month of now, oldest first.
func monthStarts(now time.Time, n int) []time.Time {
	if n < 1 {
		n = 1
	}

	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	starts := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		starts = append(starts, anchor.AddDate(0, -i, 0))
	}

	return starts
}

// monthKey is the canonical YYYY-MM bucket key.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// FormatCents formats an amount stored as cents into a 2-decimal display string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
