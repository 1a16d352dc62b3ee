package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/cache"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/inference"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/kafka"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/config"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/advisor"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/assistant"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/storage"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/server"
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

	closer, err := tracing.Init("finova-server")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		_ = closer.Close()
	}()

	store, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}

	assistantSvc := assistant.New(newGenerator(conf), advisor.New(), store, conf.App())

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache", zap.Error(err))
	}

	srv := server.New(store, assistantSvc, producer, mc)

	httpServer := &http.Server{
		Addr:    conf.Server().Addr(),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", conf.Server().Addr()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(context.Background()); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
}
