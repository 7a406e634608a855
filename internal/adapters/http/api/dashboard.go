// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DashboardDependencies defines the interface for dashboard configuration.
type DashboardDependencies interface {
	DashboardNames() []string
}

// dashboardHandler serves the embedded dashboard page and its config.
type dashboardHandler struct {
	deps DashboardDependencies
}

// newDashboardHandler creates a new dashboard handler.
func newDashboardHandler(deps DashboardDependencies) *dashboardHandler {
	return &dashboardHandler{deps: deps}
}

// HandleDashboard handles GET /dashboard requests.
// Returns an HTML page whose script renders one panel per configured
// subject from /series/{name} and /legend.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}

// HandleNames handles GET /dashboard/names requests, telling the page
// which subjects to render.
func (h *dashboardHandler) HandleNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.DashboardNames())
}
