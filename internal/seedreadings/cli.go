package seedreadings

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/pulse/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`Pulse Reading Seeder
====================

Generates and submits blood-pressure readings against a running tracker,
then verifies each subject's series comes back sorted and classified.

Usage:
  go run cmd/seed-readings/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -readings int
        Number of readings to generate and submit (default 200)
  -names string
        Comma-separated subject names (default "alice,bob")
  -admin string
        Identity sent in the X-Auth-User header (default "admin")
  -days int
        Spread readings over this many past days (default 30)
  -workers int
        Number of concurrent submitters (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated readings (default: seeded_readings_TIMESTAMP.json)
  -log string
        Log file for run output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-readings/main.go

  # Seed a remote instance with custom subjects
  go run cmd/seed-readings/main.go -url http://localhost:8080 -names carol,dana -admin carol

  # Heavier run over a longer window
  go run cmd/seed-readings/main.go -readings 5000 -days 365 -workers 16
`)
}
