package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/config"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/statement"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/tracer"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracer.Init("finance-tracker-reporter")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres", zap.Error(err))
	}

	statementCache, err := cache.NewMemcache(conf.Memcached(), conf.App().StatementTTL())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}

	generator := statement.NewGenerator(conf.App(), db)

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, statementCache)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to consume", zap.Error(err))
	}
}
