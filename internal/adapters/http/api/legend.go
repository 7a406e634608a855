// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/pulse/internal/domain/model"
)

// LegendDependencies defines the interface for legend reads.
type LegendDependencies interface {
	GetLegend() []model.LegendEntry
}

// LegendHandler serves the category legend table.
type LegendHandler struct {
	deps LegendDependencies
}

// NewLegendHandler creates a new legend handler.
func NewLegendHandler(deps LegendDependencies) *LegendHandler {
	return &LegendHandler{deps: deps}
}

// HandleGetLegend handles GET /legend requests.
func (h *LegendHandler) HandleGetLegend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.GetLegend())
}
