package insight

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osamarizk/wizo-insights/internal/http/auth"
	"github.com/osamarizk/wizo-insights/internal/insights"
)

const defaultTrendMonths = 3

type Handler struct {
	svc *insights.Service
}

func NewHandler(svc *insights.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.current)
	r.Get("/trends", h.trends)
	r.Get("/budgets", h.budgets)
}

type insightResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  string `json:"kind"`
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Generate(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if found == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(insightResponse{
		Title: found.Title,
		Body:  found.Body,
		Kind:  string(found.Kind),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type trendResponse struct {
	CategoryID   string   `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	Values       []string `json:"values"`
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	months := defaultTrendMonths
	if s := r.URL.Query().Get("months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			months = n
		}
	}

	series, err := h.svc.Trends(r.Context(), auth.UserID(r.Context()), months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]trendResponse, len(series))
	for i, ts := range series {
		values := make([]string, len(ts.Values))
		for j, v := range ts.Values {
			values[j] = insights.FormatCents(v)
		}

		resp[i] = trendResponse{
			CategoryID:   ts.CategoryID,
			CategoryName: ts.CategoryName,
			Values:       values,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type budgetResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Budgeted     string `json:"budgeted"`
	Spent        string `json:"spent"`
	Status       string `json:"status"`
}

func (h *Handler) budgets(w http.ResponseWriter, r *http.Request) {
	period := insights.MonthOf(time.Now().UTC())

	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}

		period = insights.MonthOf(t)
	}

	report, err := h.svc.BudgetReport(r.Context(), auth.UserID(r.Context()), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]budgetResponse, len(report))
	for i, bp := range report {
		resp[i] = budgetResponse{
			CategoryID:   bp.CategoryID,
			CategoryName: bp.CategoryName,
			Budgeted:     insights.FormatCents(bp.Budgeted),
			Spent:        insights.FormatCents(bp.Spent),
			Status:       string(bp.Status),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
