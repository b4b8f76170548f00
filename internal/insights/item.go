package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osamarizk/wizo-insights/internal/receipt"
)

// UnknownItem is used when a line item arrives without a name.
const UnknownItem = "Unknown Item"

// ItemSummary aggregates line items across all receipts for one item name.
type ItemSummary struct {
	Item          string
	TotalSpend    int64 // Amount in cents
	TimesBought   decimal.Decimal
	PurchaseDates []time.Time // newest first
}

// AggregateItems groups line items by name across receipts. TimesBought counts
// by quantity, not by line occurrence; purchase dates are recorded once per
// line occurrence. Output preserves first-seen order.
func AggregateItems(receipts []*receipt.Receipt) []ItemSummary {
	index := make(map[string]int)

	var summaries []ItemSummary

	for _, r := range receipts {
		for _, li := range r.Items {
			name := li.Name
			if name == "" {
				name = UnknownItem
			}

			i, seen := index[name]
			if !seen {
				i = len(summaries)
				index[name] = i

				summaries = append(summaries, ItemSummary{Item: name})
			}

			summaries[i].TotalSpend += li.Spend()
			summaries[i].TimesBought = summaries[i].TimesBought.Add(li.Quantity)
			summaries[i].PurchaseDates = append(summaries[i].PurchaseDates, r.Date)
		}
	}

	for i := range summaries {
		dates := summaries[i].PurchaseDates
		sort.Slice(dates, func(a, b int) bool { return dates[a].After(dates[b]) })
	}

	return summaries
}
