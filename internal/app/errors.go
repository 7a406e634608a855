package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownName = errors.New("unknown subject name")
)
