package models

import "strings"

// StepKind is the segment type of a firing schedule row.
type StepKind string

const (
	KindRamp StepKind = "Ramp" // linear change from start to end temperature
	KindSoak StepKind = "Soak" // hold at start temperature
)

// ParseStepKind accepts "ramp" and "soak" in any letter case. Older schedule
// tables store the lowercase form.
func ParseStepKind(s string) (StepKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ramp":
		return KindRamp, true
	case "soak":
		return KindSoak, true
	default:
		return "", false
	}
}

// Step is one row of a firing schedule.
type Step struct {
	Position   int      `json:"position" yaml:"position,omitempty"` // 1-based
	Kind       StepKind `json:"kind" yaml:"kind"`
	StartTempC float64  `json:"start_temp_c" yaml:"start_temp_c"` // °C
	EndTempC   float64  `json:"end_temp_c" yaml:"end_temp_c"`     // °C, ignored for Soak
	Duration   string   `json:"duration" yaml:"duration"`         // HH:MM:SS | HH:MM | "N minutes"
	Notes      string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}
