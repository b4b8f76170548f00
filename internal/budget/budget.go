package budget

import "time"

// Budget is a user-defined spending cap for a category over a date range.
type Budget struct {
	ID         string
	UserID     string
	CategoryID string
	Amount     int64 // Amount in cents
	StartDate  time.Time
	EndDate    time.Time
}

// ActiveIn reports whether the budget's date range overlaps [start, end]
// inclusively. Overlap, not containment: a budget spanning the whole year is
// active in every month of it.
func (b Budget) ActiveIn(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
