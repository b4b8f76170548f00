package insights_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osamarizk/wizo-insights/internal/category"
	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/receipt"
)

func trendTable() category.Table {
	return category.NewTable([]category.Category{
		{ID: "food", Name: "Food"},
		{ID: "fuel", Name: "Fuel"},
		{ID: "fun", Name: "Entertainment"},
	})
}

func TestCategoryTrends(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	receipts := []*receipt.Receipt{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Items: []receipt.LineItem{
			{Name: "Pasta", Price: 300, Quantity: qty(2), CategoryID: "food"},
		}},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Items: []receipt.LineItem{
			{Name: "Petrol", Price: 5000, Quantity: qty(1), CategoryID: "fuel"},
			{Name: "Cinema", Price: 1200, Quantity: qty(1), CategoryID: "fun"},
			// No category: excluded from trends.
			{Name: "Mystery", Price: 800, Quantity: qty(1)},
		}},
	}

	series := insights.CategoryTrends(receipts, trendTable(), now, 3)
	require.Len(t, series, 3)

	// Ranked by window total descending.
	assert.Equal(t, "Fuel", series[0].CategoryName)
	assert.Equal(t, "Entertainment", series[1].CategoryName)
	assert.Equal(t, "Food", series[2].CategoryName)

	// Values align with the Jan-Feb-Mar window, zero-filled.
	require.Len(t, series[0].Values, 3)
	assert.Equal(t, []int64{0, 0, 5000}, series[0].Values)
	assert.Equal(t, []int64{600, 0, 0}, series[2].Values)
}

func TestCategoryTrends_TopFiveCap(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	var items []receipt.LineItem
	for i := 0; i < 8; i++ {
		items = append(items, receipt.LineItem{
			Name:       fmt.Sprintf("item-%d", i),
			Price:      int64(100 * (i + 1)),
			Quantity:   qty(1),
			CategoryID: fmt.Sprintf("cat-%d", i),
		})
	}

	receipts := []*receipt.Receipt{{Date: now, Items: items}}

	series := insights.CategoryTrends(receipts, category.Table{}, now, 2)
	require.Len(t, series, 5)

	// Highest totals survive the cap; unknown ids resolve to the sentinel.
	assert.Equal(t, "cat-7", series[0].CategoryID)
	assert.Equal(t, category.UnknownName, series[0].CategoryName)

	for _, ts := range series {
		assert.Len(t, ts.Values, 2)
	}
}

func TestCategoryTrends_TieBreakFirstEncountered(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	receipts := []*receipt.Receipt{
		{Date: now, Items: []receipt.LineItem{
			{Name: "a", Price: 500, Quantity: qty(1), CategoryID: "fuel"},
			{Name: "b", Price: 500, Quantity: qty(1), CategoryID: "food"},
		}},
	}

	series := insights.CategoryTrends(receipts, trendTable(), now, 1)
	require.Len(t, series, 2)

	// Equal totals keep first-encountered order.
	assert.Equal(t, "fuel", series[0].CategoryID)
	assert.Equal(t, "food", series[1].CategoryID)
}

func TestCategoryTrends_Empty(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, insights.CategoryTrends(nil, category.Table{}, now, 6))
}
