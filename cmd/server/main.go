package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/exchange"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/config"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/rates"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/server"
	"max.ks1230/finance-tracker/internal/tracer"
)

func main() {
	logger.Info("Server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracer.Init("finance-tracker-server")
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

	exchangeClient := exchange.New(conf.Exchange())
	source := rates.NewSource()
	puller, err := rates.NewPuller(source, db, exchangeClient, conf.App())
	if err != nil {
		logger.Fatal("failed to init rates puller", zap.Error(err))
	}

	statementCache, err := cache.NewMemcache(conf.Memcached(), conf.App().StatementTTL())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	srv := server.New(conf.Server(), conf.App(), db, source, statementCache, producer)
	router := server.Router(conf.Server(), srv)

	logger.Info("Server init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go puller.Pull(ctx)
	go serveMetrics(conf.Server().MetricsPort())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Server().Port()),
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down server", zap.Error(err))
		}
	}()

	if err = httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func serveMetrics(port int) {
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
		logger.Error("metrics endpoint stopped", zap.Error(err))
	}
}
