// Package cache memoizes derived views with bounded staleness.
//
// Each subject name owns an independent entry with its own TTL clock, so a
// rebuild for one name never blocks or intermixes with another's. Expiry is
// checked lazily on access; there are no background timers.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/okian/pulse/internal/domain/classify"
	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/pkg/metrics"
)

// SeriesBuilder abstracts the rebuild path on a cache miss.
// series.Builder satisfies it.
type SeriesBuilder interface {
	Build(ctx context.Context, name string) (model.Series, error)
}

// ViewCache serves per-name series and the process-wide legend from memory,
// rebuilding on miss, TTL expiry, or explicit invalidation.
type ViewCache struct {
	builder   SeriesBuilder
	seriesTTL time.Duration
	legendTTL time.Duration
	now       func() time.Time

	mu      sync.Mutex
	entries map[string]*entry

	legendMu sync.Mutex
	legend   []model.LegendEntry
	legendAt time.Time
}

// entry holds one name's cached series. Its mutex serializes rebuilds so at
// most one build per key is in flight; concurrent readers for the same name
// block behind it rather than duplicating gateway fetches.
type entry struct {
	mu      sync.Mutex
	series  model.Series
	builtAt time.Time // zero means invalid
}

// New creates a view cache over the given builder.
func New(builder SeriesBuilder, opts ...Option) *ViewCache {
	c := &ViewCache{
		builder:   builder,
		seriesTTL: defaultSeriesTTL,
		legendTTL: defaultLegendTTL,
		now:       time.Now,
		entries:   make(map[string]*entry),
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetSeries returns the cached series for name, rebuilding via the series
// builder on miss or expiry. A failed rebuild caches nothing.
func (c *ViewCache) GetSeries(ctx context.Context, name string) (model.Series, error) {
	e := c.entry(name)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.builtAt.IsZero() && c.now().Sub(e.builtAt) < c.seriesTTL {
		metrics.RecordCacheHit("series")
		return e.series, nil
	}

	metrics.RecordCacheMiss("series")
	s, err := c.builder.Build(ctx, name)
	if err != nil {
		return model.Series{}, err
	}
	e.series = s
	e.builtAt = c.now()
	return s, nil
}

// GetLegend returns the cached legend table. The long TTL is an
// optimization only; the data is constant for the process lifetime.
func (c *ViewCache) GetLegend() []model.LegendEntry {
	c.legendMu.Lock()
	defer c.legendMu.Unlock()

	if c.legend != nil && c.now().Sub(c.legendAt) < c.legendTTL {
		metrics.RecordCacheHit("legend")
		return c.legend
	}

	metrics.RecordCacheMiss("legend")
	c.legend = classify.Legend()
	c.legendAt = c.now()
	return c.legend
}

// Invalidate forcibly expires the entry for name. Called after every
// successful insert so the next read reflects the new record instead of
// serving stale data for up to the TTL window.
func (c *ViewCache) Invalidate(name string) {
	c.mu.Lock()
	e, ok := c.entries[name]
	c.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	e.builtAt = time.Time{}
	e.series = model.Series{}
	e.mu.Unlock()
}

// entry returns the cache slot for name, creating it on first use.
func (c *ViewCache) entry(name string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[name]
	if !ok {
		e = &entry{}
		c.entries[name] = e
		metrics.UpdateCacheEntries(len(c.entries))
	}
	return e
}
