package receipt

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receipt
type Repository interface {
	ListReceipts(ctx context.Context, userID string, filter ListFilter) ([]*Receipt, error)
}

// ListFilter narrows a fetch to a date range. Nil bounds are open.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches a user's receipts, normalized, newest first.
func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]*Receipt, error) {
	return s.repo.ListReceipts(ctx, userID, filter)
}
