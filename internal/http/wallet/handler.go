package wallet

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osamarizk/wizo-insights/internal/http/auth"
	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/wallet"
)

type Handler struct {
	svc *wallet.Service
}

func NewHandler(svc *wallet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type summaryResponse struct {
	Balance            string `json:"balance"`
	MonthlyDeposits    string `json:"monthlyDeposits"`
	MonthlyExpenses    string `json:"monthlyExpenses"`
	AverageCashExpense string `json:"averageCashExpense"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		Balance:            insights.FormatCents(summary.Balance),
		MonthlyDeposits:    insights.FormatCents(summary.MonthlyDeposits),
		MonthlyExpenses:    insights.FormatCents(summary.MonthlyExpenses),
		AverageCashExpense: insights.FormatCents(summary.AverageCashExpense),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
