package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nvp-welfare-backend/internal/config"
	"nvp-welfare-backend/internal/interfaces/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	srv, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	// Verify connections before accepting traffic
	sqlDB, err := srv.DB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres: get DB")
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Postgres connection failed")
	}
	log.Info().Msg("Postgres connected")
	if srv.Redis != nil {
		if err := srv.Redis.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server running")
		log.Info().Msgf("Health check: http://localhost:%s/health/json", cfg.Port)
		if err := srv.App.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := srv.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Mailer.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("pending emails abandoned")
	}
	if srv.Redis != nil {
		_ = srv.Redis.Close()
	}
	_ = sqlDB.Close()
	log.Info().Msg("server stopped")
}
