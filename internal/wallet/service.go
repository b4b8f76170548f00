package wallet

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=wallet
type Repository interface {
	ListTransactions(ctx context.Context, userID string) ([]*Transaction, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List fetches a user's full wallet history, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

// Summary fetches the history and computes the cash-flow summary for the
// current calendar month.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(txs, s.now()), nil
}
