package main

import (
	"os"

	"github.com/yigit/cgpatracker/internal/pkg/logger"
	"github.com/yigit/cgpatracker/internal/server"
)

// @title CGPA Tracker API
// @version 1.0
// @description Weighted grade-point average, suggested study hours and CGPA prediction for a session gradebook.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
