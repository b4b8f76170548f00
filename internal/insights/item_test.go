package insights_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/receipt"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestAggregateItems(t *testing.T) {
	receipts := []*receipt.Receipt{
		{
			Date: day(1),
			Items: []receipt.LineItem{
				{Name: "Milk", Price: 250, Quantity: qty(2)},
				{Name: "Bread", Price: 180, Quantity: qty(1)},
			},
		},
		{
			Date: day(10),
			Items: []receipt.LineItem{
				{Name: "Milk", Price: 250, Quantity: qty(1)},
			},
		},
	}

	got := insights.AggregateItems(receipts)
	require.Len(t, got, 2)

	milk := got[0]
	assert.Equal(t, "Milk", milk.Item)
	// 2×2.50 + 1×2.50 in cents.
	assert.Equal(t, int64(750), milk.TotalSpend)
	// Counted by quantity, not by line occurrence.
	assert.True(t, milk.TimesBought.Equal(qty(3)))
	// One purchase date per line occurrence, newest first.
	require.Len(t, milk.PurchaseDates, 2)
	assert.Equal(t, day(10), milk.PurchaseDates[0])
	assert.Equal(t, day(1), milk.PurchaseDates[1])

	assert.Equal(t, "Bread", got[1].Item)
	assert.Equal(t, int64(180), got[1].TotalSpend)
}

func TestAggregateItems_QuantityConservation(t *testing.T) {
	receipts := []*receipt.Receipt{
		{Date: day(1), Items: []receipt.LineItem{
			{Name: "A", Price: 100, Quantity: qty(3)},
			{Name: "B", Price: 100, Quantity: qty(2)},
		}},
		{Date: day(2), Items: []receipt.LineItem{
			{Name: "A", Price: 100, Quantity: qty(4)},
		}},
	}

	total := decimal.Zero
	for _, s := range insights.AggregateItems(receipts) {
		total = total.Add(s.TimesBought)
	}

	assert.True(t, total.Equal(qty(9)))
}

func TestAggregateItems_UnknownItem(t *testing.T) {
	got := insights.AggregateItems([]*receipt.Receipt{
		{Date: day(1), Items: []receipt.LineItem{{Price: 100, Quantity: qty(1)}}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, insights.UnknownItem, got[0].Item)
}

func TestAggregateItems_NoItems(t *testing.T) {
	got := insights.AggregateItems([]*receipt.Receipt{{Date: day(1), Items: []receipt.LineItem{}}})
	assert.Empty(t, got)
}
