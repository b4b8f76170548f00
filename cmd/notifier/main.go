package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osamarizk/wizo-insights/internal/amqp"
	"github.com/osamarizk/wizo-insights/internal/budget"
	budgetStore "github.com/osamarizk/wizo-insights/internal/budget/store"
	"github.com/osamarizk/wizo-insights/internal/category"
	categoryStore "github.com/osamarizk/wizo-insights/internal/category/store"
	"github.com/osamarizk/wizo-insights/internal/config"
	"github.com/osamarizk/wizo-insights/internal/database"
	"github.com/osamarizk/wizo-insights/internal/insights"
	"github.com/osamarizk/wizo-insights/internal/notify"
	notifyStore "github.com/osamarizk/wizo-insights/internal/notify/store"
	"github.com/osamarizk/wizo-insights/internal/receipt"
	receiptStore "github.com/osamarizk/wizo-insights/internal/receipt/store"
	"github.com/osamarizk/wizo-insights/internal/wallet"
	walletStore "github.com/osamarizk/wizo-insights/internal/wallet/store"
)

// Runs once per invocation; scheduling is left to cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	queue, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
	if err != nil {
		slog.Error("failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	cachedCategories, err := category.NewCachedRepository(categoryStore.New(db), cfg.Insights.CategoryTableTTL)
	if err != nil {
		slog.Error("failed to create category cache", "error", err)
		os.Exit(1)
	}

	insightsService := insights.NewService(
		receipt.NewService(receiptStore.New(db)),
		budget.NewService(budgetStore.New(db)),
		wallet.NewService(walletStore.New(db)),
		category.NewService(cachedCategories),
		insights.WithBudgetOptions(insights.BudgetOptions{
			IncludeUnused: cfg.Insights.IncludeUnusedBudgets,
		}),
	)

	notifyService := notify.NewService(notifyStore.New(db), insightsService, queue)

	if err := notifyService.Run(context.Background()); err != nil {
		slog.Error("notification run failed", "error", err)
		os.Exit(1)
	}
}
