package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tazhibayda/interview-service/docs"
	"github.com/tazhibayda/interview-service/internal/config"
	api "github.com/tazhibayda/interview-service/internal/http"
	"github.com/tazhibayda/interview-service/internal/log"
	"github.com/tazhibayda/interview-service/internal/metrics"
	"github.com/tazhibayda/interview-service/internal/queue"
	"github.com/tazhibayda/interview-service/internal/repo"
	"github.com/tazhibayda/interview-service/internal/seed"
)

// @title Interview Service API
// @version 1.0.0
// @description Interview practice backend: accounts, saved sessions, question catalog.
// @BasePath /
func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Prod)
	if err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// a broken store connection is fatal; serving without one is worse
	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	// bootstrap data in-process too; a failed seed must not block serving
	if err := seed.Run(ctx, store); err != nil {
		logger.Error("seed", zap.Error(err))
	}

	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		p, err := queue.NewRabbit(cfg.RabbitURL, queue.Exchange)
		if err != nil {
			logger.Error("rabbit connect, events disabled", zap.Error(err))
		} else {
			pub = p
		}
	}
	defer pub.Close()

	metrics.MustRegister()

	h := api.NewHandler(store, pub, cfg.StaticDir)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	logger.Info("interview-service listening", zap.String("port", cfg.Port))

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("signal received, shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		logger.Error("server error", zap.Error(err))
	}
}
