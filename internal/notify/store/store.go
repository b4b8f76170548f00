package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osamarizk/wizo-insights/internal/notify"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTokens(ctx context.Context) ([]notify.Token, error) {
	query := `
		SELECT user_id, token
		FROM push_tokens
		ORDER BY user_id, created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing push tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notify.Token

	for rows.Next() {
		var t notify.Token

		if err := rows.Scan(&t.UserID, &t.Token); err != nil {
			return nil, fmt.Errorf("scanning push token: %w", err)
		}

		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating push token rows: %w", err)
	}

	return tokens, nil
}
