package seedreadings

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumReadings int           // Number of readings to generate
	Names       []string      // Subject names to spread readings across
	AdminUser   string        // Identity sent in the auth header
	Days        int           // Readings are spread over this many past days
	Workers     int           // Number of concurrent submitters
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for generated readings
	LogFile     string        // Log file for run output
	Verbose     bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	ReadingsGenerated int
	ReadingsSubmitted int
	ReadingsAccepted  int
	ReadingsRejected  int
	ReadingsFailed    int
	SeriesVerified    int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
