package insights

import (
	"github.com/osamarizk/wizo-insights/internal/budget"
	"github.com/osamarizk/wizo-insights/internal/category"
	"github.com/osamarizk/wizo-insights/internal/receipt"
)

// BudgetStatus classifies actual spend against a budget cap.
type BudgetStatus string

const (
	StatusUnder BudgetStatus = "under"
	StatusOver  BudgetStatus = "over"
)

// BudgetPerformance is one budget matched against actual category spend in a
// period.
type BudgetPerformance struct {
	CategoryID   string
	CategoryName string
	Budgeted     int64 // Amount in cents
	Spent        int64 // Amount in cents
	Status       BudgetStatus
}

// BudgetOptions tunes the evaluator. IncludeUnused reports budgets with zero
// observed spend as fully under budget instead of omitting them; the app's
// screens historically hide unused budgets, so it defaults to off.
type BudgetOptions struct {
	IncludeUnused bool
}

// EvaluateBudgets matches each budget active in p against the period's actual
// per-category line-item spend. A budget is active on inclusive date-range
// overlap with p; its full amount counts, with no proration across the months
// it spans. Status is "over" only on spent strictly greater than budgeted.
func EvaluateBudgets(budgets []*budget.Budget, receipts []*receipt.Receipt, table category.Table, p Period, opts BudgetOptions) []BudgetPerformance {
	spent := make(map[string]int64)

	for _, r := range receipts {
		if !p.Contains(r.Date) {
			continue
		}

		for _, li := range r.Items {
			if li.CategoryID == "" {
				continue
			}

			spent[li.CategoryID] += li.Spend()
		}
	}

	var out []BudgetPerformance

	for _, b := range budgets {
		if !b.ActiveIn(p.Start, p.End) {
			continue
		}

		categorySpend := spent[b.CategoryID]
		if categorySpend == 0 && !opts.IncludeUnused {
			continue
		}

		perf := BudgetPerformance{
			CategoryID:   b.CategoryID,
			CategoryName: table.Resolve(b.CategoryID),
			Budgeted:     b.Amount,
			Spent:        categorySpend,
			Status:       StatusUnder,
		}
		if categorySpend > b.Amount {
			perf.Status = StatusOver
		}

		out = append(out, perf)
	}

	return out
}
