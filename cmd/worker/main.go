package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osamarizk/wizo-insights/internal/amqp"
	"github.com/osamarizk/wizo-insights/internal/config"
	"github.com/osamarizk/wizo-insights/internal/push"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	queue, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
	if err != nil {
		slog.Error("failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	gateway := push.NewClient(cfg.Push.Endpoint, cfg.Push.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting push worker", "queue", cfg.AMQP.Queue)

	err = queue.ConsumeNotifications(ctx, func(msg *amqp.NotificationMessage) error {
		return gateway.Send(ctx, push.Notification{
			To:    msg.To,
			Title: msg.Title,
			Body:  msg.Body,
		})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}
}
