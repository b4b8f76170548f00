package budget

import "context"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	ListBudgets(ctx context.Context, userID string) ([]*Budget, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches all budgets a user has defined.
func (s *Service) List(ctx context.Context, userID string) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}
