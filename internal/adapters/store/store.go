// Package store defines the record store gateway interface and errors.
//
// The gateway is a pure transport boundary to the document base holding
// readings: no filtering, sorting, or domain validation happens here beyond
// shaping loosely-typed items into model.Reading at the edge.
package store

import (
	"context"

	"github.com/okian/pulse/internal/domain/model"
)

// Store provides read/write access to the persisted readings.
type Store interface {
	// FetchAll returns every stored reading across all names. The caller
	// filters; no query pushdown is assumed of the backing base.
	// Returns ErrStoreUnavailable when the base cannot be reached.
	FetchAll(ctx context.Context) ([]model.Reading, error)

	// Insert persists one new reading and returns the key assigned by the
	// base. The input Key field is ignored.
	// Returns ErrStoreWrite on any underlying failure.
	Insert(ctx context.Context, r model.Reading) (string, error)
}
