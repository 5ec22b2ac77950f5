package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/electives/cutoffs/internal/config"
	"github.com/electives/cutoffs/internal/pkg/logger"
	"github.com/electives/cutoffs/internal/server"
)

// @title Elective Cutoffs API
// @version 1.0
// @description Browse, filter and search elective courses by their historical CGPA allocation cutoffs.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// A .env file is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to read .env file")
	}

	srv, err := server.NewServer(config.GetEnv("CONFIG_PATH", config.DefaultConfigPath))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
