// Package merchant canonicalizes merchant names. OCR output is noisy
// ("CARREFOUR MKT 0231" vs "Carrefour"), so the app's edit flows can look up
// and teach raw→canonical name mappings, keeping merchant aggregation keys
// stable over time.
package merchant

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=merchant
type Repository interface {
	FindMapping(ctx context.Context, rawName string) (string, error)
	CreateMapping(ctx context.Context, rawPattern, canonicalName string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a canonical name for a raw merchant string.
// Returns empty string when nothing matches.
func (s *Service) Suggest(ctx context.Context, rawName string) (string, error) {
	return s.repo.FindMapping(ctx, rawName)
}

// Learn remembers a new mapping between a raw pattern and a canonical name.
func (s *Service) Learn(ctx context.Context, rawPattern, canonicalName string) error {
	return s.repo.CreateMapping(ctx, rawPattern, canonicalName)
}
