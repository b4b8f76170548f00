package budget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osamarizk/wizo-insights/internal/budget"
)

func TestBudget_ActiveIn(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	b := budget.Budget{
		StartDate: day(2024, time.February, 15),
		EndDate:   day(2024, time.April, 10),
	}

	type testCase struct {
		name       string
		start, end time.Time
		want       bool
	}

	tests := []testCase{
		{name: "FullyInside", start: day(2024, time.March, 1), end: day(2024, time.March, 31), want: true},
		{name: "OverlapsStart", start: day(2024, time.February, 1), end: day(2024, time.February, 29), want: true},
		{name: "OverlapsEnd", start: day(2024, time.April, 1), end: day(2024, time.April, 30), want: true},
		{name: "Contains", start: day(2024, time.January, 1), end: day(2024, time.December, 31), want: true},
		{name: "TouchesStartBoundary", start: day(2024, time.January, 1), end: day(2024, time.February, 15), want: true},
		{name: "TouchesEndBoundary", start: day(2024, time.April, 10), end: day(2024, time.May, 1), want: true},
		{name: "Before", start: day(2024, time.January, 1), end: day(2024, time.January, 31), want: false},
		{name: "After", start: day(2024, time.May, 1), end: day(2024, time.May, 31), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.ActiveIn(tt.start, tt.end))
		})
	}
}
