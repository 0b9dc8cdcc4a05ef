package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"lunchbox-marketplace/agg-svc/internal/service"
	"lunchbox-marketplace/agg-svc/internal/storage"
	"lunchbox-marketplace/config"

	"go.uber.org/zap"
)

const consumerGroup = "agg-svc-consumer"

func run(ctx context.Context, store *storage.Store, reader service.MessageReader, logger *zap.SugaredLogger) error {
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	service.NewConsumer(reader, store, logger).Start(ctx)
	return nil
}

func main() {
	config.Load("")
	logger := config.NewLogger("agg-svc")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, consumerGroup)
	defer reader.Close()

	if err := run(ctx, storage.NewStore(db, rdb), reader, logger); err != nil {
		logger.Fatalw("aggregation stopped", "error", err)
	}
}
