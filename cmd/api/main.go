package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careerdesk/core/internal/config"
	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/server"
)

func main() {
	// Local development overrides; absent in production
	_ = godotenv.Load()

	// Setup structured logging
	logger.SetupLogger()
	log := logger.New("api-service")

	// Load configuration
	cfg := config.Load()

	// Create and configure server
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("action", "server_creation_failed").
			Msg("Failed to create server")
	}

	// Start server
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().
				Err(err).
				Str("action", "server_failed").
				Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().
			Err(err).
			Str("action", "shutdown_failed").
			Msg("Graceful shutdown failed")
	}
}
