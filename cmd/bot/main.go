package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/inference"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/tg"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/config"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/advisor"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/assistant"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/storage"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/tracing"
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// newGenerator returns nil when no endpoint is configured, so the
// assistant runs on the rule engine alone.
func newGenerator(conf *config.Service) textGenerator {
	if conf.Inference().Endpoint() == "" {
		return nil
	}
	return inference.New(conf.Inference())
}

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init("finova-bot")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		_ = closer.Close()
	}()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client", zap.Error(err))
	}

	store, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}

	assistantSvc := assistant.New(newGenerator(conf), advisor.New(), store, conf.App())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client.ListenUpdates(ctx, assistantSvc)
}
