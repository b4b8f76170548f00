package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osamarizk/wizo-insights/internal/budget"
	"github.com/osamarizk/wizo-insights/internal/category"
	"github.com/osamarizk/wizo-insights/internal/receipt"
	"github.com/osamarizk/wizo-insights/internal/wallet"
)

// topCategoryCount limits how many categories the prioritizer considers.
const topCategoryCount = 3

// Service orchestrates an aggregation pass: it fetches all inputs, then runs
// the pure engine once over fully resolved data. It holds no mutable state, so
// concurrent invocations for different users are independent.
type Service struct {
	receipts   *receipt.Service
	budgets    *budget.Service
	wallets    *wallet.Service
	categories *category.Service

	selector   Selector
	budgetOpts BudgetOptions
	now        func() time.Time
}

type Option func(*Service)

// WithSelector replaces the random insight selector, making runs reproducible.
func WithSelector(sel Selector) Option {
	return func(s *Service) { s.selector = sel }
}

// WithClock replaces the time source used to anchor "current month" windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithBudgetOptions tunes budget evaluation, e.g. reporting unused budgets.
func WithBudgetOptions(opts BudgetOptions) Option {
	return func(s *Service) { s.budgetOpts = opts }
}

func NewService(
	receipts *receipt.Service,
	budgets *budget.Service,
	wallets *wallet.Service,
	categories *category.Service,
	opts ...Option,
) *Service {
	s := &Service{
		receipts:   receipts,
		budgets:    budgets,
		wallets:    wallets,
		categories: categories,
		selector:   RandomSelector{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SpendingOverview bundles everything the spending screen renders for a
// trailing window.
type SpendingOverview struct {
	Merchants []MerchantSummary
	Items     []ItemSummary
	Monthly   []MonthBucket
}

// Spending computes merchant, item and monthly aggregates over the trailing
// window of months ending now.
func (s *Service) Spending(ctx context.Context, userID string, months int) (*SpendingOverview, error) {
	now := s.now()

	receipts, err := s.fetchWindow(ctx, userID, now, months)
	if err != nil {
		return nil, err
	}

	return &SpendingOverview{
		Merchants: AggregateMerchants(receipts),
		Items:     AggregateItems(receipts),
		Monthly:   MonthlyTrailing(receipts, now, months),
	}, nil
}

// Monthly computes the twelve calendar-month buckets of a year.
func (s *Service) Monthly(ctx context.Context, userID string, year int) ([]MonthBucket, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Second)

	receipts, err := s.receipts.List(ctx, userID, receipt.ListFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, fmt.Errorf("fetching receipts: %w", err)
	}

	return MonthlyByYear(receipts, year), nil
}

// Trends computes the top-category spend series over a trailing window.
func (s *Service) Trends(ctx context.Context, userID string, months int) ([]TrendSeries, error) {
	now := s.now()

	var (
		receipts []*receipt.Receipt
		table    category.Table
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		receipts, err = s.fetchWindow(gctx, userID, now, months)
		return err
	})
	g.Go(func() (err error) {
		table, err = s.categories.Table(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return CategoryTrends(receipts, table, now, months), nil
}

// BudgetReport evaluates the user's budgets against actual spend in p.
func (s *Service) BudgetReport(ctx context.Context, userID string, p Period) ([]BudgetPerformance, error) {
	var (
		receipts []*receipt.Receipt
		budgets  []*budget.Budget
		table    category.Table
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		receipts, err = s.receipts.List(gctx, userID, receipt.ListFilter{StartDate: &p.Start, EndDate: &p.End})
		if err != nil {
			err = fmt.Errorf("fetching receipts: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.budgets.List(gctx, userID)
		if err != nil {
			err = fmt.Errorf("fetching budgets: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		table, err = s.categories.Table(gctx)
		if err != nil {
			err = fmt.Errorf("fetching categories: %w", err)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return EvaluateBudgets(budgets, receipts, table, p, s.budgetOpts), nil
}

// Generate runs a full aggregation pass over the current month and returns the
// single prioritized insight, or nil when the data supports none.
func (s *Service) Generate(ctx context.Context, userID string) (*Insight, error) {
	now := s.now()
	month := MonthOf(now)

	var (
		receipts []*receipt.Receipt
		budgets  []*budget.Budget
		walletTx []*wallet.Transaction
		table    category.Table
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		receipts, err = s.receipts.List(gctx, userID, receipt.ListFilter{StartDate: &month.Start, EndDate: &month.End})
		if err != nil {
			err = fmt.Errorf("fetching receipts: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.budgets.List(gctx, userID)
		if err != nil {
			err = fmt.Errorf("fetching budgets: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		walletTx, err = s.wallets.List(gctx, userID)
		if err != nil {
			err = fmt.Errorf("fetching wallet transactions: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		table, err = s.categories.Table(gctx)
		if err != nil {
			err = fmt.Errorf("fetching categories: %w", err)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalSpend int64
	for _, r := range receipts {
		totalSpend += r.Total
	}

	walletSummary := wallet.Summarize(walletTx, now)

	input := InsightInput{
		TotalSpend:    totalSpend,
		TopCategories: topCategorySpend(CategoryTrends(receipts, table, now, 1)),
		Merchants:     AggregateMerchants(receipts),
		Items:         AggregateItems(receipts),
		Budgets:       EvaluateBudgets(budgets, receipts, table, month, s.budgetOpts),
		WalletBalance: walletSummary.Balance,
		HasWallet:     len(walletTx) > 0,
	}

	insight, ok := PickInsight(input, s.selector)
	if !ok {
		return nil, nil
	}

	return &insight, nil
}

// topCategorySpend flattens trend series into ranked period totals for the
// prioritizer.
func topCategorySpend(series []TrendSeries) []CategorySpend {
	out := make([]CategorySpend, 0, topCategoryCount)

	for _, ts := range series {
		if len(out) == topCategoryCount {
			break
		}

		var total int64
		for _, v := range ts.Values {
			total += v
		}

		out = append(out, CategorySpend{Name: ts.CategoryName, Total: total})
	}

	return out
}

// fetchWindow fetches receipts covering the trailing months window ending at
// now.
func (s *Service) fetchWindow(ctx context.Context, userID string, now time.Time, months int) ([]*receipt.Receipt, error) {
	starts := monthStarts(now, months)
	start := starts[0]
	end := MonthOf(now).End

	receipts, err := s.receipts.List(ctx, userID, receipt.ListFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, fmt.Errorf("fetching receipts: %w", err)
	}

	return receipts, nil
}
