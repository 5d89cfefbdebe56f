package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/NP-Dat/battle-arena/internal/server"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

func main() {
	// Command line flags
	host := flag.String("host", "localhost", "Host to listen on")
	port := flag.Int("port", 8080, "Port to listen on")
	basePath := flag.String("basePath", getDefaultBasePath(), "Base path for config files")
	logLevel := flag.String("logLevel", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	initLogging(*logLevel)

	// Create and start the server
	srv := server.NewServer(*host, *port, *basePath)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := srv.Stop(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}

// getDefaultBasePath returns the default base path for config files
func getDefaultBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		log.Printf("Warning: Failed to get current working directory: %v", err)
		return "."
	}

	// Check if we're in the root directory of the project
	if _, err := os.Stat(filepath.Join(cwd, "config", "arena.yaml")); err == nil {
		return cwd
	}

	// If we're in cmd/arena-server, go up two levels
	if _, err := os.Stat(filepath.Join(cwd, "..", "..", "config", "arena.yaml")); err == nil {
		return filepath.Join(cwd, "..", "..")
	}

	log.Printf("Warning: Could not find config directory, using current directory")
	return cwd
}

// initLogging initializes the logging system
func initLogging(logLevelStr string) {
	logsDir := filepath.Join(".", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	} else if err := logger.InitializeFileLogging(logsDir); err != nil {
		log.Printf("Warning: Failed to initialize file logging: %v", err)
	}

	logger.SetGlobalLogLevel(logger.ParseLevel(logLevelStr))
}
