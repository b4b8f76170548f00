package spending

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/osamarizk/wizo-insights/internal/budget"
	"github.com/osamarizk/wizo-insights/internal/category"
	"github.com/osamarizk/wizo-insights/internal/http/auth"
	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/receipt"
	"github.com/osamarizk/wizo-insights/internal/wallet"
)

func newTestHandler(t *testing.T, receipts []*receipt.Receipt) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)

	receiptRepo := receipt.NewMockRepository(ctrl)
	receiptRepo.EXPECT().
		ListReceipts(gomock.Any(), "user-1", gomock.Any()).
		Return(receipts, nil).
		AnyTimes()

	svc := insights.NewService(
		receipt.NewService(receiptRepo),
		budget.NewService(budget.NewMockRepository(ctrl)),
		wallet.NewService(wallet.NewMockRepository(ctrl)),
		category.NewService(category.NewMockRepository(ctrl)),
		insights.WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		}),
	)

	return NewHandler(svc)
}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Route("/spending", h.Routes)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestMerchantsEndpoint(t *testing.T) {
	h := newTestHandler(t, []*receipt.Receipt{
		{Merchant: "Carrefour", Total: 4550, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Merchant: "Carrefour", Total: 1000, Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
	})

	rec := doRequest(h, "/spending/merchants?months=3")

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []merchantRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Carrefour", rows[0].Merchant)
	assert.Equal(t, "55.50", rows[0].TotalAmount)
	assert.Equal(t, 2, rows[0].Visits)
}

func TestItemsEndpoint(t *testing.T) {
	h := newTestHandler(t, []*receipt.Receipt{
		{
			Merchant: "Carrefour",
			Total:    500,
			Date:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Items: []receipt.LineItem{
				{Name: "Milk", Price: 250, Quantity: decimal.NewFromInt(2)},
			},
		},
	})

	rec := doRequest(h, "/spending/items")

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []itemRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Milk", rows[0].Item)
	assert.Equal(t, "5.00", rows[0].TotalSpend)
	assert.Equal(t, "2", rows[0].TimesBought)
}

func TestMonthlyEndpointYear(t *testing.T) {
	h := newTestHandler(t, []*receipt.Receipt{
		{Merchant: "Carrefour", Total: 1200, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	})

	rec := doRequest(h, "/spending/monthly?year=2024")

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []chartRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 12)
	assert.Equal(t, "Jan", rows[0].Label)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "12.00", rows[0].Amount)
	assert.Equal(t, 0, rows[0].ColorIndex)
	assert.Equal(t, "0.00", rows[1].Amount)
}

func TestMonthlyEndpointInvalidYear(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doRequest(h, "/spending/monthly?year=banana")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
