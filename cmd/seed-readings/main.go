package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/okian/pulse/internal/seedreadings"
)

// Default configuration constants.
const (
	defaultNumReadings = 200
	defaultDays        = 30
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numReadings = flag.Int("readings", defaultNumReadings, "Number of readings to generate and submit")
		names       = flag.String("names", "alice,bob", "Comma-separated subject names")
		admin       = flag.String("admin", "admin", "Identity sent in the X-Auth-User header")
		days        = flag.Int("days", defaultDays, "Spread readings over this many past days")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent submitters")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile  = flag.String("output", "", "Output file for generated readings (default: seeded_readings_TIMESTAMP.json)")
		logFile     = flag.String("log", "", "Log file for run output (default: seed_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedreadings.ShowHelp()
		return
	}

	// Setup logging
	if err := seedreadings.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create run configuration
	config := &seedreadings.Config{
		BaseURL:     *baseURL,
		NumReadings: *numReadings,
		Names:       strings.Split(*names, ","),
		AdminUser:   *admin,
		Days:        *days,
		Workers:     *workers,
		Timeout:     *timeout,
		OutputFile:  *outputFile,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the seeder
	if err := seedreadings.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}
