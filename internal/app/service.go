// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/pulse/internal/adapters/cache"
	"github.com/okian/pulse/internal/adapters/store"
	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/series"
	"github.com/okian/pulse/internal/domain/validate"
	"github.com/okian/pulse/pkg/logger"
	"github.com/okian/pulse/pkg/metrics"
)

// Service implements the API dependencies for the reading tracker.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   store.Store
	builder *series.Builder
	views   *cache.ViewCache

	// Configuration
	names          []string
	admin          string
	dashboardNames []string
	seriesTTL      time.Duration
	legendTTL      time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the record store gateway. Defaults to the in-memory store.
func WithStore(s store.Store) Option {
	return func(svc *Service) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithKnownNames sets the allowed subject identities.
func WithKnownNames(names []string) Option {
	return func(svc *Service) {
		if len(names) > 0 {
			svc.names = names
		}
	}
}

// WithAdmin sets the identity allowed to submit readings.
func WithAdmin(admin string) Option {
	return func(svc *Service) {
		if admin != "" {
			svc.admin = admin
		}
	}
}

// WithDashboardNames sets which subjects the dashboard panels show.
func WithDashboardNames(names []string) Option {
	return func(svc *Service) {
		if len(names) > 0 {
			svc.dashboardNames = names
		}
	}
}

// WithSeriesTTL sets the per-name series cache time-to-live.
func WithSeriesTTL(ttl time.Duration) Option {
	return func(svc *Service) {
		if ttl > 0 {
			svc.seriesTTL = ttl
		}
	}
}

// WithLegendTTL sets the legend cache time-to-live.
func WithLegendTTL(ttl time.Duration) Option {
	return func(svc *Service) {
		if ttl > 0 {
			svc.legendTTL = ttl
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(svc *Service) {
		if logger != nil {
			svc.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		names:          []string{"alice", "bob"},
		admin:          "admin",
		dashboardNames: []string{"alice", "bob"},
		seriesTTL:      60 * time.Second,
		legendTTL:      600 * time.Second,
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting reading tracker service...")

	if s.store == nil {
		s.store = store.NewMemoryStore()
		s.logger.Info(ctx, "no store configured; using in-memory store")
	}
	s.builder = series.NewBuilder(s.store, series.WithLogger(s.logger.Named("series")))
	s.views = cache.New(s.builder,
		cache.WithSeriesTTL(s.seriesTTL),
		cache.WithLegendTTL(s.legendTTL),
	)

	s.started = true
	s.logger.Info(ctx, "reading tracker service started",
		logger.Int("names", len(s.names)),
		logger.String("admin", s.admin),
		logger.Duration("seriesTTL", s.seriesTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping reading tracker service...")

	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "reading tracker service stopped")
}

// GetSeries returns the cached, classified series for a known subject.
// Returns ErrUnknownName for identities outside the configured set.
func (s *Service) GetSeries(ctx context.Context, name string) (model.Series, error) {
	if !s.isKnown(name) {
		return model.Series{}, fmt.Errorf("get series %q: %w", name, ErrUnknownName)
	}
	return s.views.GetSeries(ctx, name)
}

// GetLegend returns the cached category legend.
func (s *Service) GetLegend() []model.LegendEntry {
	return s.views.GetLegend()
}

// SubmitReading validates a submission, persists it, and invalidates the
// subject's cached series so the next read reflects the new record.
func (s *Service) SubmitReading(ctx context.Context, sub validate.Submission) (model.Reading, error) {
	r, err := validate.ValidateAndNormalize(sub, s.KnownNames())
	if err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) {
			metrics.RecordReadingRejected(fieldErr.Field)
		}
		s.logger.Warn(ctx, "rejected reading submission",
			logger.String("name", sub.Name),
			logger.Error(err),
		)
		return model.Reading{}, err
	}

	key, err := s.store.Insert(ctx, r)
	if err != nil {
		s.logger.Error(ctx, "failed to persist reading",
			logger.String("name", r.Name),
			logger.Error(err),
		)
		return model.Reading{}, err
	}
	r.Key = key
	metrics.RecordReadingInserted()

	// Invalidate after the insert completes so any read that starts later
	// sees the new record instead of a stale cached series.
	s.views.Invalidate(r.Name)

	s.logger.Info(ctx, "reading saved",
		logger.String("name", r.Name),
		logger.String("timestamp", r.Timestamp),
		logger.Int("systolic", r.Systolic),
		logger.Int("diastolic", r.Diastolic),
		logger.String("key", r.Key),
	)
	return r, nil
}

// IsAdmin reports whether the authenticated user is the configured admin.
// The comparison is case-insensitive, matching the legacy behavior.
func (s *Service) IsAdmin(user string) bool {
	return user != "" && strings.EqualFold(user, s.admin)
}

// KnownNames returns a copy of the configured subject identities.
func (s *Service) KnownNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// DashboardNames returns the subjects shown on the dashboard panels.
func (s *Service) DashboardNames() []string {
	out := make([]string, len(s.dashboardNames))
	copy(out, s.dashboardNames)
	return out
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"names":        len(s.names),
		"seriesTTLSec": int(s.seriesTTL / time.Second),
		"legendTTLSec": int(s.legendTTL / time.Second),
	}

	if counter, ok := s.store.(interface{ Len() int }); ok {
		stats["storedReadings"] = counter.Len()
	}

	return stats
}

func (s *Service) isKnown(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}
