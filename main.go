// Package main is the entry point for the storefront API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"log"
	"os"

	"storefront/src/app/server"
	"storefront/src/core/domain"
	"storefront/src/infra/config"
	"storefront/src/infra/logger"
	"storefront/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize in-memory stores; state lives for the process lifetime only
	userStore := repo.NewMemoryStore[domain.User]()
	orderStore := repo.NewMemoryStore[domain.Order]()

	// Create and run HTTP server
	srv := server.New(cfg, log, userStore, orderStore)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
