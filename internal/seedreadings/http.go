package seedreadings

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/validate"
	"github.com/okian/pulse/pkg/logger"
)

// apiClient wraps a resty client bound to the service under seed.
type apiClient struct {
	client *resty.Client
	admin  string
}

// newAPIClient creates a client for the service API. Every write carries
// the admin identity header; the service rejects anything else.
func newAPIClient(config *Config) *apiClient {
	return &apiClient{
		client: resty.New().
			SetBaseURL(config.BaseURL).
			SetTimeout(config.Timeout).
			SetHeader("Content-Type", "application/json"),
		admin: config.AdminUser,
	}
}

// checkHealth verifies the service answers on its metrics endpoint.
func (c *apiClient) checkHealth(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode())
	}
	return nil
}

// submitOne posts a single reading and classifies the outcome.
func (c *apiClient) submitOne(ctx context.Context, sub validate.Submission) string {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Auth-User", c.admin).
		SetBody(sub).
		Post("/readings")
	if err != nil {
		return "failed"
	}
	switch resp.StatusCode() {
	case http.StatusCreated:
		return "accepted"
	case http.StatusBadRequest:
		return "rejected"
	default:
		return "failed"
	}
}

// fetchSeries retrieves one subject's classified series.
func (c *apiClient) fetchSeries(ctx context.Context, name string) (seriesResponse, error) {
	var out seriesResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/series/" + name)
	if err != nil {
		return seriesResponse{}, fmt.Errorf("failed to fetch series for %q: %w", name, err)
	}
	if resp.IsError() {
		return seriesResponse{}, fmt.Errorf("series fetch for %q failed with status: %d", name, resp.StatusCode())
	}
	return out, nil
}

// seriesResponse mirrors the service's series wire shape.
type seriesResponse struct {
	Name     string                    `json:"name"`
	Empty    bool                      `json:"empty"`
	Readings []model.ClassifiedReading `json:"readings"`
}

// submitReadings pushes all submissions through a worker pool and tallies
// the outcomes.
func submitReadings(ctx context.Context, config *Config, subs []validate.Submission, stats *Stats) error {
	logger.Get().Info(ctx, "submitting readings",
		logger.Int("count", len(subs)),
		logger.Int("workers", config.Workers))

	client := newAPIClient(config)

	var (
		accepted  int64
		rejected  int64
		failed    int64
		submitted int64
	)

	subChan := make(chan validate.Submission, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range subChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				atomic.AddInt64(&submitted, 1)
				switch client.submitOne(ctx, sub) {
				case "accepted":
					atomic.AddInt64(&accepted, 1)
				case "rejected":
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	progressDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-progressDone:
				return
			case <-ticker.C:
				if config.Verbose {
					logger.Get().Info(ctx, "progress",
						logger.Int("submitted", int(atomic.LoadInt64(&submitted))),
						logger.Int("total", len(subs)))
				}
			}
		}
	}()

	go func() {
		defer close(subChan)
		for _, sub := range subs {
			select {
			case <-ctx.Done():
				return
			case subChan <- sub:
			}
		}
	}()

	wg.Wait()
	close(progressDone)

	stats.ReadingsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ReadingsAccepted = int(atomic.LoadInt64(&accepted))
	stats.ReadingsRejected = int(atomic.LoadInt64(&rejected))
	stats.ReadingsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "submission completed",
		logger.Int("accepted", stats.ReadingsAccepted),
		logger.Int("rejected", stats.ReadingsRejected),
		logger.Int("failed", stats.ReadingsFailed))
	return nil
}
