package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osamarizk/wizo-insights/internal/receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReceipt reads a raw receipt row and normalizes it.
// Expected column order: id, user_id, merchant, total, purchase_datetime, items
func scanReceipt(s scanner) (*receipt.Receipt, error) {
	var raw receipt.Raw

	var merchant, total sql.NullString

	var items []byte

	if err := s.Scan(&raw.ID, &raw.UserID, &merchant, &total, &raw.Date, &items); err != nil {
		return nil, err
	}

	raw.Merchant = merchant.String
	raw.Total = total.String
	raw.Items = items

	return receipt.Normalize(raw), nil
}

func (s *Store) ListReceipts(ctx context.Context, userID string, filter receipt.ListFilter) ([]*receipt.Receipt, error) {
	query := `
		SELECT id, user_id, merchant, total, purchase_datetime, items
		FROM receipts
		WHERE user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND purchase_datetime >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND purchase_datetime <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY purchase_datetime DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*receipt.Receipt

	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receipt: %w", err)
		}

		receipts = append(receipts, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipt rows: %w", err)
	}

	return receipts, nil
}
