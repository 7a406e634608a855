package config

import (
	"errors"
)

// Sentinel error kinds for this package. Load wraps these so callers can
// errors.Is a bad file apart from a failed validation.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
