package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agro-registry/internal/config"
	"agro-registry/internal/database"
	"agro-registry/internal/repository"
	"agro-registry/internal/router"
)

func main() {
	seed := flag.Bool("seed", false, "replace all data with the demo dataset before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.DBDriver, "error", err.Error())
		os.Exit(1)
	}

	if *seed || cfg.SeedDatabase {
		summary, err := repository.NewSeedRepository(db).SeedDatabase()
		if err != nil {
			logger.Error("failed to seed database", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("database seeded",
			"organizations", summary.Organizations,
			"properties", summary.Properties,
			"regions", summary.Regions,
			"fields", summary.Fields,
			"crops", summary.Crops,
			"crop_cycles", summary.CropCycles,
		)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(cfg, db, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err.Error())
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server exited")
}

// newLogger builds the slog handler selected by LOG_FORMAT and LOG_LEVEL
func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "agro-registry")
}
