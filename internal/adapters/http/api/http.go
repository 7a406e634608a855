// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/validate"
)

// Identity header carrying the authenticated user for write operations.
// Authentication itself happens upstream; this layer only authorizes.
const authUserHeader = "X-Auth-User"

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// GetSeries returns the cached classified series for a known subject.
	GetSeries(ctx context.Context, name string) (model.Series, error)

	// GetLegend returns the category legend table.
	GetLegend() []model.LegendEntry

	// SubmitReading validates and persists one new reading.
	SubmitReading(ctx context.Context, sub validate.Submission) (model.Reading, error)

	// IsAdmin reports whether user may submit readings.
	IsAdmin(user string) bool

	// DashboardNames lists the subjects shown on the dashboard panels.
	DashboardNames() []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	readingsHandler  *ReadingsHandler
	seriesHandler    *SeriesHandler
	legendHandler    *LegendHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		readingsHandler:  NewReadingsHandler(deps),
		seriesHandler:    NewSeriesHandler(deps),
		legendHandler:    NewLegendHandler(deps),
		dashboardHandler: newDashboardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard/names", MetricsMiddleware(s.dashboardHandler.HandleNames, "dashboard_names"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/readings", MetricsMiddleware(s.readingsHandler.HandlePostReading, "readings"))
	mux.HandleFunc("/series/", MetricsMiddleware(s.seriesHandler.HandleGetSeries, "series"))
	mux.HandleFunc("/legend", MetricsMiddleware(s.legendHandler.HandleGetLegend, "legend"))
}

// savedResponse acknowledges a persisted reading with its assigned key.
type savedResponse struct {
	Status  string        `json:"status"`
	Reading model.Reading `json:"reading"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
