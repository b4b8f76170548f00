package insights

import (
	"sort"
	"time"

	"github.com/osamarizk/wizo-insights/internal/receipt"
)

// MerchantSummary aggregates a user's receipts for one merchant.
type MerchantSummary struct {
	Merchant   string
	Total      int64 // Amount in cents
	Visits     int
	VisitDates []time.Time // newest first
}

// AggregateMerchants groups receipts by merchant name. Receipts without a
// merchant fall under receipt.UnknownMerchant. Output preserves the order in
// which merchants were first seen.
func AggregateMerchants(receipts []*receipt.Receipt) []MerchantSummary {
	index := make(map[string]int, len(receipts))
	summaries := make([]MerchantSummary, 0, len(receipts))

	for _, r := range receipts {
		name := r.Merchant
		if name == "" {
			name = receipt.UnknownMerchant
		}

		i, seen := index[name]
		if !seen {
			i = len(summaries)
			index[name] = i

			summaries = append(summaries, MerchantSummary{Merchant: name})
		}

		summaries[i].Total += r.Total
		summaries[i].Visits++
		summaries[i].VisitDates = append(summaries[i].VisitDates, r.Date)
	}

	for i := range summaries {
		dates := summaries[i].VisitDates
		sort.Slice(dates, func(a, b int) bool { return dates[a].After(dates[b]) })
	}

	return summaries
}
