// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/pulse/internal/adapters/store"
	service "github.com/okian/pulse/internal/app"
	"github.com/okian/pulse/internal/domain/model"
)

// SeriesDependencies defines the interface for series reads.
type SeriesDependencies interface {
	GetSeries(ctx context.Context, name string) (model.Series, error)
}

// SeriesHandler handles per-subject series requests.
type SeriesHandler struct {
	deps SeriesDependencies
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(deps SeriesDependencies) *SeriesHandler {
	return &SeriesHandler{deps: deps}
}

// seriesResponse is the wire shape of one subject's classified series.
// A subject with no readings answers empty:true with no data arrays.
type seriesResponse struct {
	Name            string                    `json:"name"`
	Empty           bool                      `json:"empty"`
	Readings        []model.ClassifiedReading `json:"readings,omitempty"`
	Measurements    []model.Point             `json:"measurements,omitempty"`
	Interpretations []model.Point             `json:"interpretations,omitempty"`
}

// HandleGetSeries handles GET /series/{name} requests.
func (h *SeriesHandler) HandleGetSeries(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_series"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/series/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	s, err := h.deps.GetSeries(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownName):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, store.ErrStoreUnavailable):
			writeError(w, http.StatusBadGateway, "store_unavailable", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}

	writeJSON(w, http.StatusOK, seriesResponse{
		Name:            s.Name,
		Empty:           s.Empty(),
		Readings:        s.Readings,
		Measurements:    s.Measurements,
		Interpretations: s.Interpretations,
	})
}
