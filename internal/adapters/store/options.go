package store

import (
	"time"

	"github.com/okian/pulse/pkg/logger"
)

// Default Deta client configuration constants.
const (
	defaultBaseURL    = "https://database.deta.sh"
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 3
	defaultRetryWait  = 500 * time.Millisecond
	queryPageSize     = 1000
)

// DetaOption applies a configuration option to the DetaStore.
type DetaOption func(*DetaStore)

// WithBaseURL overrides the base API endpoint. Used by tests to point the
// client at a local server.
func WithBaseURL(url string) DetaOption {
	return func(s *DetaStore) {
		if url != "" {
			s.client.SetBaseURL(url)
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) DetaOption {
	return func(s *DetaStore) {
		if d > 0 {
			s.client.SetTimeout(d)
		}
	}
}

// WithRetryCount sets the number of transport-level retries.
func WithRetryCount(n int) DetaOption {
	return func(s *DetaStore) {
		if n >= 0 {
			s.client.SetRetryCount(n)
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) DetaOption {
	return func(s *DetaStore) {
		if log != nil {
			s.log = log
		}
	}
}
