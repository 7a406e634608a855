package store

import "errors"

// Sentinel kinds for gateway errors.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreWrite       = errors.New("store write failed")
)
