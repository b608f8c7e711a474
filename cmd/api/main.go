package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hostelhub/hostelhub/internal/pkg/logger"
	"github.com/hostelhub/hostelhub/internal/server"
)

// @title Hostel Management API
// @version 1.0
// @description Record-management API for hostel administration

// @host localhost:8000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
