// Package model contains domain models passed between layers.
package model

import "time"

// TimestampLayout is the sortable layout readings are stored with.
// Lexicographic order of the string equals chronological order, which is
// what the series builder's stable sort relies on.
const TimestampLayout = "2006-01-02 15:04:05"

// Reading represents one stored blood-pressure measurement.
// JSON field names mirror the legacy document base so existing records
// round-trip unchanged.
type Reading struct {
	Name      string `json:"Name"`      // subject identifier, case-sensitive
	Timestamp string `json:"Date"`      // combined date+time, TimestampLayout
	Systolic  int    `json:"Systolic"`  // mmHg, [0,200] at entry time
	Diastolic int    `json:"Diastolic"` // mmHg, [0,200] at entry time
	Key       string `json:"key,omitempty"` // opaque id assigned by the store
}

// Time parses the reading timestamp into a temporal value for charting.
func (r Reading) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, r.Timestamp)
}

// Category is one of the closed set of clinical classification labels.
type Category string

// The closed category enumeration. Undefined is unreachable for integer
// input under the ordered rules but remains part of the contract.
const (
	CategoryNormal   Category = "normal"
	CategoryElevated Category = "elevated"
	CategoryHBPS1    Category = "hbps1"
	CategoryHBPS2    Category = "hbps2"
	CategoryCrisis   Category = "hypertensive_crisis"
	CategoryUndef    Category = "undefined"
)

// ClassifiedReading is a Reading annotated with its clinical category and
// parsed timestamp. Derived at read time, never stored.
type ClassifiedReading struct {
	Reading
	Time     time.Time `json:"time"`
	Category Category  `json:"category"`
}

// Point is one row of a long-form chart projection: a single
// (x, variable, value) triple. Multi-trace line charts consume one Point
// per variable per timestamp.
type Point struct {
	Time     time.Time `json:"time"`
	Variable string    `json:"variable"`
	Value    any       `json:"value"`
}

// Series is the chronologically ordered, classified view of one subject's
// readings, together with the two long-form projections consumed by the
// charting collaborator.
type Series struct {
	Name     string              `json:"name"`
	Readings []ClassifiedReading `json:"readings"`

	// Measurements holds the systolic/diastolic traces; Interpretations
	// holds the single classification trace on the same x-axis.
	Measurements    []Point `json:"measurements"`
	Interpretations []Point `json:"interpretations"`
}

// Empty reports whether the series is the no-data sentinel. Callers must
// not chart or reshape an empty series.
func (s Series) Empty() bool {
	return len(s.Readings) == 0
}

// LegendEntry maps a category code to its human-readable meaning.
type LegendEntry struct {
	Category Category `json:"category"`
	Meaning  string   `json:"meaning"`
}
