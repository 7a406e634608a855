// Package validate checks and normalizes new-reading submissions before
// they reach the record store gateway.
package validate

import (
	"fmt"
	"time"

	"github.com/okian/pulse/internal/domain/model"
)

// Pressure bounds enforced at entry time. The legacy UI relied on widget
// limits alone; the core enforces them independently.
const (
	MinPressure = 0
	MaxPressure = 200
)

// Wire layouts of the split date and time inputs.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// FieldError reports a rejected submission, naming the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Submission is one raw new-reading entry as it arrives from the form:
// split date and time parts plus the measured pair.
type Submission struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Name      string `json:"name"`
}

// ValidateAndNormalize turns a raw submission into a normalized Reading
// ready for insertion. The Key is left empty for the gateway to assign.
// Transport concerns never surface here; failures are always *FieldError.
func ValidateAndNormalize(sub Submission, known []string) (model.Reading, error) {
	if sub.Name == "" {
		return model.Reading{}, &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if !knownName(sub.Name, known) {
		return model.Reading{}, &FieldError{Field: "name", Reason: "unknown subject"}
	}
	if sub.Systolic < MinPressure || sub.Systolic > MaxPressure {
		return model.Reading{}, &FieldError{Field: "systolic", Reason: fmt.Sprintf("must be within [%d, %d]", MinPressure, MaxPressure)}
	}
	if sub.Diastolic < MinPressure || sub.Diastolic > MaxPressure {
		return model.Reading{}, &FieldError{Field: "diastolic", Reason: fmt.Sprintf("must be within [%d, %d]", MinPressure, MaxPressure)}
	}
	if _, err := time.Parse(DateLayout, sub.Date); err != nil {
		return model.Reading{}, &FieldError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse(TimeLayout, sub.Time); err != nil {
		return model.Reading{}, &FieldError{Field: "time", Reason: "must be HH:MM:SS"}
	}

	return model.Reading{
		Name:      sub.Name,
		Timestamp: sub.Date + " " + sub.Time,
		Systolic:  sub.Systolic,
		Diastolic: sub.Diastolic,
	}, nil
}

// knownName reports whether name is in the configured allowed set.
// Comparison is exact; storage is case-sensitive.
func knownName(name string, known []string) bool {
	for _, k := range known {
		if k == name {
			return true
		}
	}
	return false
}
