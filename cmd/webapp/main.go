package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/45h1f/learn-docker/internal/api"
	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/db"
	"github.com/45h1f/learn-docker/internal/logging"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.Environment, cfg.Debug); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Webapp starting up",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to Postgres with sqlx. Connect retries and then falls back to
	// a lazy pool, so a down database degrades the app instead of killing it.
	pool, err := db.Connect(cfg.DB)
	if err != nil {
		logging.Error("Failed to open Postgres pool", "error", err.Error())
		log.Fatalf("❌ Failed to open Postgres pool: %v", err)
	}
	defer pool.Close()

	// GORM handle for the request log and the schema bootstrap. Both are
	// optional: without them the app serves with the database card down.
	orm, err := db.OpenORM(cfg.DB)
	if err != nil {
		logging.Warn("Postgres unavailable for GORM, request log disabled", "error", err.Error())
		orm = nil
	} else if err := db.Bootstrap(orm); err != nil {
		logging.Warn("Schema bootstrap failed", "error", err.Error())
	}

	redisClient := common.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	deps := api.InitDependencies(pool, orm, redisClient)

	upSince := time.Now()
	router := routes.RegisterWebappRoutes(cfg, deps, metrics.NewRegistry("webapp"), upSince)

	// Metrics endpoint lives outside the Chi router so scrapes skip the
	// audit and rate-limit middleware.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logging.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
}
