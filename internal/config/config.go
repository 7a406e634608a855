// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DetaProjectKey authenticates against the document base holding the
	// readings. Empty selects the in-memory store (dev mode).
	DetaProjectKey string `koanf:"deta_project_key"`

	// DetaBaseName names the base the readings live in.
	DetaBaseName string `koanf:"deta_base_name"`

	// DetaBaseURL overrides the base API endpoint. Empty uses the default.
	DetaBaseURL string `koanf:"deta_base_url"`

	// Names is the set of subjects readings may be recorded for.
	Names []string `koanf:"names"`

	// Admin is the identity allowed to submit new readings. Compared
	// case-insensitively against the authenticated user.
	Admin string `koanf:"admin"`

	// DashboardNames selects which subjects the two dashboard panels show.
	DashboardNames []string `koanf:"dashboard_names"`

	// SeriesTTLSeconds bounds staleness of a cached per-name series.
	SeriesTTLSeconds int `koanf:"series_ttl_seconds"`

	// LegendTTLSeconds bounds staleness of the cached legend table.
	LegendTTLSeconds int `koanf:"legend_ttl_seconds"`

	// StoreTimeoutSeconds caps each request to the document base.
	StoreTimeoutSeconds int `koanf:"store_timeout_seconds"`
}

// New creates a Config populated with defaults. Callers layer file and env
// overrides on top via Load.
func New() *Config {
	c := &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		DetaBaseName:        "health",
		Names:               []string{"alice", "bob"},
		Admin:               "admin",
		DashboardNames:      []string{"alice", "bob"},
		SeriesTTLSeconds:    60,
		LegendTTLSeconds:    600,
		StoreTimeoutSeconds: 10,
	}
	return c
}
