package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMapping(ctx context.Context, rawName string) (string, error) {
	query := `
		SELECT canonical_name
		FROM merchant_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var canonical string

	err := s.db.QueryRowContext(ctx, query, rawName).Scan(&canonical)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding merchant mapping: %w", err)
	}

	return canonical, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern, canonicalName string) error {
	query := `
		INSERT INTO merchant_mappings (raw_pattern, canonical_name, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, canonicalName)
	if err != nil {
		return fmt.Errorf("creating merchant mapping: %w", err)
	}

	return nil
}
