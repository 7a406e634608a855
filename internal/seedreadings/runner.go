package seedreadings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/okian/pulse/internal/domain/validate"
	"github.com/okian/pulse/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// Run executes a complete seeding pass: health check, generation,
// concurrent submission, per-subject verification, and a JSON dump of
// what was sent.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting reading seeder",
		logger.String("baseURL", config.BaseURL),
		logger.Int("readings", config.NumReadings),
		logger.Int("workers", config.Workers),
		logger.Int("days", config.Days),
		logger.String("admin", config.AdminUser))

	client := newAPIClient(config)

	if err := client.checkHealth(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	logger.Get().Info(ctx, "service is healthy")

	subs, err := generateReadings(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("reading generation failed: %w", err)
	}

	if err := submitReadings(ctx, config, subs, stats); err != nil {
		return fmt.Errorf("reading submission failed: %w", err)
	}

	if err := verifySeries(ctx, config, client, subs, stats); err != nil {
		return fmt.Errorf("series verification failed: %w", err)
	}

	if err := saveReadingsToFile(ctx, config, subs); err != nil {
		logger.Get().Warn(ctx, "failed to save readings to file", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info(ctx, "seeding completed",
		logger.Int("generated", stats.ReadingsGenerated),
		logger.Int("accepted", stats.ReadingsAccepted),
		logger.Int("rejected", stats.ReadingsRejected),
		logger.Int("failed", stats.ReadingsFailed),
		logger.Int("seriesVerified", stats.SeriesVerified),
		logger.Duration("duration", stats.Duration))
	return nil
}

// verifySeries fetches every subject's series and checks that it is
// non-empty and chronologically sorted. The seeder just wrote readings
// for each name, so an empty or unsorted answer means trouble.
func verifySeries(ctx context.Context, config *Config, client *apiClient, subs []validate.Submission, stats *Stats) error {
	seeded := make(map[string]int)
	for _, sub := range subs {
		seeded[sub.Name]++
	}

	for _, name := range config.Names {
		s, err := client.fetchSeries(ctx, name)
		if err != nil {
			return err
		}
		if seeded[name] > 0 && s.Empty {
			return fmt.Errorf("series for %q is empty after seeding %d readings", name, seeded[name])
		}
		for i := 1; i < len(s.Readings); i++ {
			if s.Readings[i].Timestamp < s.Readings[i-1].Timestamp {
				return fmt.Errorf("series for %q is not sorted at position %d", name, i)
			}
		}
		stats.SeriesVerified++
		logger.Get().Info(ctx, "series verified",
			logger.String("name", name),
			logger.Int("readings", len(s.Readings)))
	}
	return nil
}

// saveReadingsToFile writes the generated submissions to a JSON file.
func saveReadingsToFile(ctx context.Context, config *Config, subs []validate.Submission) error {
	if len(subs) == 0 {
		return fmt.Errorf("no readings to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "seeded_readings_" + timestamp + ".json"
	}

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal readings: %w", err)
	}
	if err := os.WriteFile(filename, data, outputFilePermission); err != nil {
		return fmt.Errorf("failed to write readings file: %w", err)
	}

	logger.Get().Info(ctx, "saved readings", logger.String("file", filename), logger.Int("count", len(subs)))
	return nil
}
