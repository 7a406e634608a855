// Package series builds the classified, chart-ready time series for one
// subject from the raw record store.
package series

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/pulse/internal/domain/classify"
	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/pkg/logger"
	"github.com/okian/pulse/pkg/metrics"
)

// Long-form variable names expected by the charting collaborator.
const (
	VariableSystolic       = "systolic"
	VariableDiastolic      = "diastolic"
	VariableClassification = "classification"
)

// Fetcher abstracts the record store read needed by the builder.
// store.Store satisfies it.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.Reading, error)
}

// Builder derives per-name series from the record store. It is stateless
// and safe for concurrent use across names.
type Builder struct {
	fetcher Fetcher
	log     logger.Logger
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithLogger sets a custom logger for the builder.
func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder creates a series builder over the given fetcher.
func NewBuilder(fetcher Fetcher, opts ...Option) *Builder {
	b := &Builder{fetcher: fetcher}

	// Apply all options
	for _, opt := range opts {
		opt(b)
	}

	if b.log == nil {
		b.log = logger.Get().Named("series")
	}

	return b
}

// Build fetches all records, filters to the exact name, stable-sorts by
// timestamp, classifies each reading, and produces the two long-form
// projections. An empty filtered set yields the empty sentinel with no
// reshape performed.
func (b *Builder) Build(ctx context.Context, name string) (model.Series, error) {
	const op = "series.build"
	start := time.Now()

	all, err := b.fetcher.FetchAll(ctx)
	if err != nil {
		return model.Series{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := make([]model.Reading, 0, len(all))
	for _, r := range all {
		if r.Name == name {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return model.Series{Name: name}, nil
	}

	// Stable keeps storage order for identical timestamps. The layout is
	// lexicographically sortable, so string comparison is chronological.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp < filtered[j].Timestamp
	})

	s := model.Series{
		Name:            name,
		Readings:        make([]model.ClassifiedReading, 0, len(filtered)),
		Measurements:    make([]model.Point, 0, 2*len(filtered)),
		Interpretations: make([]model.Point, 0, len(filtered)),
	}
	for _, r := range filtered {
		ts, err := r.Time()
		if err != nil {
			// The gateway normally rejects these; tolerate stragglers from
			// externally inserted records.
			b.log.Warn(ctx, "skipping reading with unparseable timestamp",
				logger.String("name", r.Name),
				logger.String("timestamp", r.Timestamp),
				logger.String("key", r.Key),
			)
			continue
		}

		category := classify.Classify(r.Systolic, r.Diastolic)
		s.Readings = append(s.Readings, model.ClassifiedReading{
			Reading:  r,
			Time:     ts,
			Category: category,
		})
		s.Measurements = append(s.Measurements,
			model.Point{Time: ts, Variable: VariableSystolic, Value: r.Systolic},
			model.Point{Time: ts, Variable: VariableDiastolic, Value: r.Diastolic},
		)
		s.Interpretations = append(s.Interpretations,
			model.Point{Time: ts, Variable: VariableClassification, Value: category},
		)
	}

	metrics.RecordSeriesBuildLatency(float64(time.Since(start).Milliseconds()))
	return s, nil
}
