package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/NP-Dat/battle-arena/internal/client"
	"github.com/NP-Dat/battle-arena/pkg/logger"
)

func main() {
	// Command line flags
	host := flag.String("host", "localhost", "Server host to connect to")
	port := flag.Int("port", 8080, "Server port to connect to")
	logLevel := flag.String("logLevel", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	initLogging(*logLevel)

	logger.Client.Info("Battle Arena client starting")
	logger.Client.Info("Connecting to server at %s:%d", *host, *port)

	// Create and connect client
	c := client.NewClient(*host, *port)
	c.SetupDefaultHandlers()

	fmt.Printf("Connecting to server at %s:%d...\n", *host, *port)
	if err := c.Connect(); err != nil {
		logger.Client.Fatal("Failed to connect to server: %v", err)
	}
	fmt.Println("Connected to server! Type 'help' for the command list.")

	// Start CLI loop in a goroutine
	go cliLoop(c)

	// Wait for disconnect
	c.WaitForDisconnect()
	fmt.Println("Disconnected from server.")
	logger.Client.Info("Client disconnected")
}

// cliLoop runs the command line interface loop
func cliLoop(c *client.Client) {
	reader := bufio.NewReader(os.Stdin)

	for c.IsConnected() {
		fmt.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			logger.Client.Error("Error reading input: %v", err)
			fmt.Printf("Error reading input: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Handle special debug command for changing log level dynamically
		if strings.HasPrefix(input, "debug loglevel ") {
			parts := strings.Fields(input)
			if len(parts) == 3 {
				logger.SetGlobalLogLevel(logger.ParseLevel(parts[2]))
				fmt.Printf("Log level set to %s\n", strings.ToUpper(parts[2]))
				continue
			}
		}

		if err := c.ParseCommand(input); err != nil {
			logger.Client.Warn("Command failed: %v", err)
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// initLogging initializes the logging system
func initLogging(logLevelStr string) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Failed to determine user home directory: %v", err)
		homeDir = "."
	}

	logsDir := filepath.Join(homeDir, ".battle-arena", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
		// Continue with console logging only
	} else if err := logger.InitializeFileLogging(logsDir); err != nil {
		log.Printf("Warning: Failed to initialize file logging: %v", err)
	}

	logger.SetGlobalLogLevel(logger.ParseLevel(logLevelStr))
}
