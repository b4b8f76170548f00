package insights

import (
	"sort"
	"time"

	"github.com/osamarizk/wizo-insights/internal/category"
	"github.com/osamarizk/wizo-insights/internal/receipt"
)

// maxTrendCategories caps how many category series a trend chart shows.
const maxTrendCategories = 5

// TrendSeries is one category's month-by-month line-item spend. Values align
// positionally with the window's month list (oldest first), zero for months
// with no recorded spend.
type TrendSeries struct {
	CategoryID   string
	CategoryName string
	Values       []int64 // Amounts in cents
}

// CategoryTrends aggregates line-item spend per category per month over the
// trailing window of n months ending at now, then emits one series for each of
// the top categories by window total. Ties rank in first-encountered order.
func CategoryTrends(receipts []*receipt.Receipt, table category.Table, now time.Time, n int) []TrendSeries {
	starts := monthStarts(now, n)
	n = len(starts)
	window := Period{Start: starts[0], End: MonthOf(now).End}

	monthIndex := make(map[string]int, n)
	for i, start := range starts {
		monthIndex[monthKey(start)] = i
	}

	// spend[categoryID][monthPosition] and a running window total per category.
	spend := make(map[string][]int64)
	totals := make(map[string]int64)

	var order []string

	for _, r := range receipts {
		if !window.Contains(r.Date) {
			continue
		}

		pos, ok := monthIndex[monthKey(r.Date)]
		if !ok {
			continue
		}

		for _, li := range r.Items {
			if li.CategoryID == "" {
				continue
			}

			if _, seen := spend[li.CategoryID]; !seen {
				spend[li.CategoryID] = make([]int64, n)

				order = append(order, li.CategoryID)
			}

			amount := li.Spend()
			spend[li.CategoryID][pos] += amount
			totals[li.CategoryID] += amount
		}
	}

	// Rank by window total descending; SliceStable keeps first-encountered
	// order for equal totals.
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(a, b int) bool { return totals[ranked[a]] > totals[ranked[b]] })

	if len(ranked) > maxTrendCategories {
		ranked = ranked[:maxTrendCategories]
	}

	series := make([]TrendSeries, 0, len(ranked))
	for _, id := range ranked {
		series = append(series, TrendSeries{
			CategoryID:   id,
			CategoryName: table.Resolve(id),
			Values:       spend[id],
		})
	}

	return series
}
