package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors. Recording helpers never return these;
// they exist for callers that build their own collectors on the registry.
var (
	ErrObserveFailed = errors.New("metrics observe failed")
)
