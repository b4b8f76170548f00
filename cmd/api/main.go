package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/osamarizk/wizo-insights/internal/budget"
	budgetStore "github.com/osamarizk/wizo-insights/internal/budget/store"
	"github.com/osamarizk/wizo-insights/internal/category"
	categoryStore "github.com/osamarizk/wizo-insights/internal/category/store"
	"github.com/osamarizk/wizo-insights/internal/config"
	"github.com/osamarizk/wizo-insights/internal/database"
	wizoHttp "github.com/osamarizk/wizo-insights/internal/http"
	insightHandler "github.com/osamarizk/wizo-insights/internal/http/insight"
	merchantHandler "github.com/osamarizk/wizo-insights/internal/http/merchant"
	spendingHandler "github.com/osamarizk/wizo-insights/internal/http/spending"
	walletHandler "github.com/osamarizk/wizo-insights/internal/http/wallet"
	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/merchant"
	merchantStore "github.com/osamarizk/wizo-insights/internal/merchant/store"
	"github.com/osamarizk/wizo-insights/internal/receipt"
	receiptStore "github.com/osamarizk/wizo-insights/internal/receipt/store"
	"github.com/osamarizk/wizo-insights/internal/wallet"
	walletStore "github.com/osamarizk/wizo-insights/internal/wallet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	cachedCategories, err := category.NewCachedRepository(categoryStore.New(db), cfg.Insights.CategoryTableTTL)
	if err != nil {
		slog.Error("failed to create category cache", "error", err)
		os.Exit(1)
	}

	var (
		receiptService  = receipt.NewService(receiptStore.New(db))
		budgetService   = budget.NewService(budgetStore.New(db))
		walletService   = wallet.NewService(walletStore.New(db))
		categoryService = category.NewService(cachedCategories)
		merchantService = merchant.NewService(merchantStore.New(db))
	)

	insightsService := insights.NewService(
		receiptService,
		budgetService,
		walletService,
		categoryService,
		insights.WithBudgetOptions(insights.BudgetOptions{
			IncludeUnused: cfg.Insights.IncludeUnusedBudgets,
		}),
	)

	var (
		spendingH = spendingHandler.NewHandler(insightsService)
		insightH  = insightHandler.NewHandler(insightsService)
		walletH   = walletHandler.NewHandler(walletService)
		merchantH = merchantHandler.NewHandler(merchantService)
	)

	router := wizoHttp.New(cfg.Auth.JWTSecret, spendingH, insightH, walletH, merchantH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
