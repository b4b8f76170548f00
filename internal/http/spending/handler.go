package spending

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osamarizk/wizo-insights/internal/http/auth"
	"github.com/osamarizk/wizo-insights/internal/insights"
)

// defaultMonths is the trailing window used when the query omits months.
const defaultMonths = 3

type Handler struct {
	svc *insights.Service
}

func NewHandler(svc *insights.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/merchants", h.merchants)
	r.Get("/items", h.items)
	r.Get("/monthly", h.monthly)
}

func monthsParam(r *http.Request) int {
	months := defaultMonths
	if s := r.URL.Query().Get("months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			months = n
		}
	}

	return months
}

func (h *Handler) merchants(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Spending(r.Context(), auth.UserID(r.Context()), monthsParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toMerchantRows(overview.Merchants)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Spending(r.Context(), auth.UserID(r.Context()), monthsParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toItemRows(overview.Items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	var (
		buckets []insights.MonthBucket
		err     error
	)

	// A year query selects calendar buckets; otherwise a trailing window.
	if s := r.URL.Query().Get("year"); s != "" {
		year, perr := strconv.Atoi(s)
		if perr != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		buckets, err = h.svc.Monthly(r.Context(), auth.UserID(r.Context()), year)
	} else {
		var overview *insights.SpendingOverview

		overview, err = h.svc.Spending(r.Context(), auth.UserID(r.Context()), monthsParam(r))
		if overview != nil {
			buckets = overview.Monthly
		}
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChartRows(buckets)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
