package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/config"
	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository/memory"
	"github.com/asbuyukgungor-bot/bus-erp/internal/router"
	"github.com/asbuyukgungor-bot/bus-erp/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store backend: in-memory for demo/dev, Postgres for real deployments.
	var (
		stores *repository.Stores
		db     *gorm.DB
	)
	switch cfg.StoreDriver {
	case "postgres":
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		stores = repository.NewGormStores(db)
	default:
		stores = memory.NewStores()
		if err := memory.Seed(ctx, stores); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("using in-memory store with demo seed data")
	}

	// Redis is optional — without it the dashboard cache and the async
	// low-stock alert pipeline are disabled.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	}

	mailer := infra.NewMailer(cfg)
	mailerCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	var dispatcher *worker.Dispatcher
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
		handlers := &worker.Handlers{
			LowStock: worker.NewLowStockWorker(mailer, mailerCB, cfg.AlertEmail),
		}
		worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
		worker.StartSweepCron(ctx, worker.SweepCronConfig{
			Parts:      stores.Parts,
			Dispatcher: dispatcher,
			RDB:        rdb,
			Threshold:  cfg.LowStockThreshold,
			Interval:   time.Duration(cfg.SweepIntervalMinutes) * time.Minute,
		})
	}

	r := router.New(cfg, stores, db, rdb, dispatcher, mailerCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("fleet inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
