package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/osamarizk/wizo-insights/internal/amqp"
	"github.com/osamarizk/wizo-insights/internal/insights"
)

func TestRunPublishesPerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockTokenRepository(ctrl)
	generator := NewMockGenerator(ctrl)
	publisher := NewMockPublisher(ctrl)

	tokens.EXPECT().ListTokens(gomock.Any()).Return([]Token{
		{UserID: "user-1", Token: "token-a"},
		{UserID: "user-1", Token: "token-b"},
		{UserID: "user-2", Token: "token-c"},
	}, nil)

	generator.EXPECT().Generate(gomock.Any(), "user-1").Return(&insights.Insight{
		Title: "Financial Insight",
		Body:  "You've spent 120.00 this month.",
		Kind:  insights.KindInfo,
	}, nil)
	generator.EXPECT().Generate(gomock.Any(), "user-2").Return(&insights.Insight{
		Title: "Budget Alert",
		Body:  "Alert: you've gone over your budget for Groceries by 20.00!",
		Kind:  insights.KindAlert,
	}, nil)

	var published []*amqp.NotificationMessage
	publisher.EXPECT().
		PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *amqp.NotificationMessage) error {
			published = append(published, msg)
			return nil
		}).
		Times(3)

	svc := NewService(tokens, generator, publisher)
	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, published, 3)
	assert.Equal(t, "token-a", published[0].To)
	assert.Equal(t, "token-b", published[1].To)
	assert.Equal(t, published[0].Body, published[1].Body)
	assert.Equal(t, "token-c", published[2].To)
	assert.Equal(t, "Budget Alert", published[2].Title)
}

func TestRunSkipsUsersWithoutInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockTokenRepository(ctrl)
	generator := NewMockGenerator(ctrl)
	publisher := NewMockPublisher(ctrl)

	tokens.EXPECT().ListTokens(gomock.Any()).Return([]Token{
		{UserID: "user-1", Token: "token-a"},
	}, nil)
	generator.EXPECT().Generate(gomock.Any(), "user-1").Return(nil, nil)

	svc := NewService(tokens, generator, publisher)
	require.NoError(t, svc.Run(context.Background()))
}

func TestRunContinuesAfterUserFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockTokenRepository(ctrl)
	generator := NewMockGenerator(ctrl)
	publisher := NewMockPublisher(ctrl)

	tokens.EXPECT().ListTokens(gomock.Any()).Return([]Token{
		{UserID: "user-1", Token: "token-a"},
		{UserID: "user-2", Token: "token-b"},
	}, nil)

	generator.EXPECT().Generate(gomock.Any(), "user-1").Return(nil, errors.New("db down"))
	generator.EXPECT().Generate(gomock.Any(), "user-2").Return(&insights.Insight{
		Title: "Financial Insight",
		Body:  "Your wallet balance is 70.00.",
		Kind:  insights.KindInfo,
	}, nil)
	publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewService(tokens, generator, publisher)
	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user-1")
}

func TestRunListTokensError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockTokenRepository(ctrl)

	tokens.EXPECT().ListTokens(gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewService(tokens, NewMockGenerator(ctrl), NewMockPublisher(ctrl))
	assert.Error(t, svc.Run(context.Background()))
}
