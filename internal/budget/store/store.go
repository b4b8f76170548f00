package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osamarizk/wizo-insights/internal/budget"
	"github.com/osamarizk/wizo-insights/internal/receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]*budget.Budget, error) {
	query := `
		SELECT id, user_id, category_id, budget_amount, start_date, end_date
		FROM budgets
		WHERE user_id = $1
		ORDER BY start_date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		var b budget.Budget

		var amount string

		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &amount, &b.StartDate, &b.EndDate); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		b.Amount = receipt.ParseCents(amount)

		budgets = append(budgets, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}
