package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osamarizk/wizo-insights/internal/receipt"
	"github.com/osamarizk/wizo-insights/internal/wallet"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTransactions(ctx context.Context, userID string) ([]*wallet.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, description, datetime
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY datetime DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing wallet transactions: %w", err)
	}
	defer rows.Close()

	var txs []*wallet.Transaction

	for rows.Next() {
		var tx wallet.Transaction

		var typeStr, amount string

		var desc sql.NullString

		if err := rows.Scan(&tx.ID, &tx.UserID, &typeStr, &amount, &desc, &tx.Date); err != nil {
			return nil, fmt.Errorf("scanning wallet transaction: %w", err)
		}

		tx.Type = wallet.Type(typeStr)
		tx.Amount = receipt.ParseCents(amount)
		tx.Description = desc.String

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wallet transaction rows: %w", err)
	}

	return txs, nil
}
