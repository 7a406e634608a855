// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/pulse/internal/adapters/store"
	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/validate"
)

// ReadingDependencies defines the interface for reading submission.
type ReadingDependencies interface {
	SubmitReading(ctx context.Context, sub validate.Submission) (model.Reading, error)
	IsAdmin(user string) bool
}

// ReadingsHandler handles new-reading submissions.
type ReadingsHandler struct {
	deps ReadingDependencies
}

// NewReadingsHandler creates a new readings handler.
func NewReadingsHandler(deps ReadingDependencies) *ReadingsHandler {
	return &ReadingsHandler{deps: deps}
}

// HandlePostReading handles POST /readings requests. Only the configured
// admin identity, carried in the X-Auth-User header, may submit.
func (h *ReadingsHandler) HandlePostReading(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_reading"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	user := r.Header.Get(authUserHeader)
	if !h.deps.IsAdmin(user) {
		writeError(w, http.StatusForbidden, "forbidden", NewKind(op, ErrForbidden))
		return
	}

	var sub validate.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	saved, err := h.deps.SubmitReading(r.Context(), sub)
	if err != nil {
		var fieldErr *validate.FieldError
		switch {
		case errors.As(err, &fieldErr):
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Code:    "validation_failed",
				Message: fieldErr.Error(),
				Field:   fieldErr.Field,
			})
		case errors.Is(err, store.ErrStoreWrite), errors.Is(err, store.ErrStoreUnavailable):
			writeError(w, http.StatusBadGateway, "store_write_failed", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}

	writeJSON(w, http.StatusCreated, savedResponse{Status: "saved", Reading: saved})
}
