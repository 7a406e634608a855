package cache

import "time"

// Default TTLs, matching the legacy memoization windows.
const (
	defaultSeriesTTL = 60 * time.Second
	defaultLegendTTL = 600 * time.Second
)

// Option applies a configuration option to the ViewCache.
type Option func(*ViewCache)

// WithSeriesTTL sets the per-name series time-to-live.
func WithSeriesTTL(ttl time.Duration) Option {
	return func(c *ViewCache) {
		if ttl > 0 {
			c.seriesTTL = ttl
		}
	}
}

// WithLegendTTL sets the legend time-to-live.
func WithLegendTTL(ttl time.Duration) Option {
	return func(c *ViewCache) {
		if ttl > 0 {
			c.legendTTL = ttl
		}
	}
}

// WithClock overrides the time source. Used by tests to step through TTL
// expiry without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *ViewCache) {
		if now != nil {
			c.now = now
		}
	}
}
