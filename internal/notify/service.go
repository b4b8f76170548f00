package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osamarizk/wizo-insights/internal/amqp"
	"github.com/osamarizk/wizo-insights/internal/insights"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=notify

// TokenRepository lists all registered push tokens.
type TokenRepository interface {
	ListTokens(ctx context.Context) ([]Token, error)
}

// Generator produces the single prioritized insight for a user. A nil insight
// with a nil error means the user has no data worth notifying about.
type Generator interface {
	Generate(ctx context.Context, userID string) (*insights.Insight, error)
}

// Publisher enqueues notification messages for the delivery worker.
type Publisher interface {
	PublishNotification(ctx context.Context, msg *amqp.NotificationMessage) error
}

type Service struct {
	tokens    TokenRepository
	generator Generator
	publisher Publisher
}

func NewService(tokens TokenRepository, generator Generator, publisher Publisher) *Service {
	return &Service{
		tokens:    tokens,
		generator: generator,
		publisher: publisher,
	}
}

// Run computes one insight per user and publishes a message per device token.
// A failure for one user does not stop the run; the first error is returned
// after all users have been attempted.
func (s *Service) Run(ctx context.Context) error {
	tokens, err := s.tokens.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("list push tokens: %w", err)
	}

	byUser := make(map[string][]string)
	order := make([]string, 0)
	for _, t := range tokens {
		if _, ok := byUser[t.UserID]; !ok {
			order = append(order, t.UserID)
		}
		byUser[t.UserID] = append(byUser[t.UserID], t.Token)
	}

	var firstErr error
	notified := 0
	for _, userID := range order {
		insight, err := s.generator.Generate(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to generate insight", "user_id", userID, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("generate insight for user %s: %w", userID, err)
			}
			continue
		}
		if insight == nil {
			slog.DebugContext(ctx, "No insight for user", "user_id", userID)
			continue
		}

		for _, token := range byUser[userID] {
			msg := amqp.NewNotificationMessage(token, insight.Title, insight.Body)
			if err := s.publisher.PublishNotification(ctx, msg); err != nil {
				slog.ErrorContext(ctx, "Failed to publish notification", "user_id", userID, "error", err)
				if firstErr == nil {
					firstErr = fmt.Errorf("publish notification for user %s: %w", userID, err)
				}
				continue
			}
			notified++
		}
	}

	slog.InfoContext(ctx, "Notification run finished",
		"users", len(order),
		"messages", notified)

	return firstErr
}
