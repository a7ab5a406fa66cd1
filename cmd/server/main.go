package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrigo/storefront/internal/api"
	"github.com/agrigo/storefront/internal/infrastructure/config"
	redisdb "github.com/agrigo/storefront/internal/infrastructure/db/redis"
	"github.com/agrigo/storefront/pkg/logger"
)

func main() {
	bootstrap := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load(bootstrap)

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Session.Secret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET is required outside development")
		}
		cfg.Session.Secret = "dev-only-insecure-secret"
		log.Warn().Msg("SESSION_SECRET not set, using insecure development default")
	}

	ctx := context.Background()
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	e := api.NewRouter(cfg, rdb, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("shutdown complete")
}
