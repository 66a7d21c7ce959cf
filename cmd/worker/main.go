package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/config"
	workerHandler "github.com/fhuszti/memorials-ms-go/internal/handler/worker"
	"github.com/fhuszti/memorials-ms-go/internal/logger"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/storage"
	"github.com/fhuszti/memorials-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/memorials-ms-go/internal/usecase/media"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	strg := initStorage(cfg)
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	purger := mediaSvc.NewPrefixPurger(strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeMemorialMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeMemorialMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeMemorialMediaHandler(ctx, p, purger)
	})

	runWorker(ctx, mux, cfg)
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
		cfg.PublicBaseURL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
