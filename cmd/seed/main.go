// One-shot database bootstrap: collections, question catalog, demo
// account. The server runs the same routine on startup; this binary
// exists for pre-provisioning a database without starting the API.
package main

import (
	"context"
	stdlog "log"
	"time"

	"go.uber.org/zap"

	"github.com/tazhibayda/interview-service/internal/config"
	"github.com/tazhibayda/interview-service/internal/log"
	"github.com/tazhibayda/interview-service/internal/repo"
	"github.com/tazhibayda/interview-service/internal/seed"
)

func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Prod)
	if err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}
	if err := seed.Run(ctx, store); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	logger.Info("database initialization complete")
}
