package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/cache"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/clients/kafka"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/config"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/insights"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/storage"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/tracing"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init("finova-insights")
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

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache", zap.Error(err))
	}

	generator := insights.NewGenerator(store, mc)

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("insight worker started")
	if err := consumer.StartConsuming(ctx); err != nil {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
