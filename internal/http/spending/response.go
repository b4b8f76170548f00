package spending

import (
	"time"

	"github.com/osamarizk/wizo-insights/internal/insights"
)

// chartColors is the size of the client chart palette; rows cycle through it.
const chartColors = 6

type merchantRow struct {
	Merchant    string      `json:"merchant"`
	TotalAmount string      `json:"totalAmount"`
	Visits      int         `json:"visits"`
	VisitDates  []time.Time `json:"visitDates"`
}

func toMerchantRows(merchants []insights.MerchantSummary) []merchantRow {
	rows := make([]merchantRow, len(merchants))
	for i, m := range merchants {
		rows[i] = merchantRow{
			Merchant:    m.Merchant,
			TotalAmount: insights.FormatCents(m.Total),
			Visits:      m.Visits,
			VisitDates:  m.VisitDates,
		}
	}

	return rows
}

type itemRow struct {
	Item          string      `json:"item"`
	TotalSpend    string      `json:"totalSpend"`
	TimesBought   string      `json:"timesBought"`
	PurchaseDates []time.Time `json:"purchaseDates"`
}

func toItemRows(items []insights.ItemSummary) []itemRow {
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{
			Item:          it.Item,
			TotalSpend:    insights.FormatCents(it.TotalSpend),
			TimesBought:   it.TimesBought.String(),
			PurchaseDates: it.PurchaseDates,
		}
	}

	return rows
}

type chartRow struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Amount     string `json:"amount"`
	ColorIndex int    `json:"colorIndex"`
}

func toChartRows(buckets []insights.MonthBucket) []chartRow {
	rows := make([]chartRow, len(buckets))
	for i, b := range buckets {
		rows[i] = chartRow{
			Label:      b.Label,
			Count:      b.Receipts,
			Amount:     insights.FormatCents(b.Total),
			ColorIndex: i % chartColors,
		}
	}

	return rows
}
