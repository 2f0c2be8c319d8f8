package engine

import (
	"errors"
	"math"

	"smartfurnace/internal/models"
)

// Bounds is the accepted instrument range in °C, inclusive.
type Bounds struct {
	MinC float64 `json:"min_c" mapstructure:"min"`
	MaxC float64 `json:"max_c" mapstructure:"max"`
}

// DefaultBounds is the range of the reference controller.
var DefaultBounds = Bounds{MinC: 0, MaxC: 1200}

var errInvalidBounds = errors.New("invalid temperature bounds: min must be <= max")

// Contains reports whether t lies within the bounds.
func (b Bounds) Contains(t float64) bool {
	return !math.IsNaN(t) && t >= b.MinC && t <= b.MaxC
}

// Check reports whether the bounds themselves are usable.
func (b Bounds) Check() error {
	if math.IsNaN(b.MinC) || math.IsNaN(b.MaxC) || b.MinC > b.MaxC {
		return errInvalidBounds
	}
	return nil
}

// Validate gates a schedule before it is stored. It returns the first problem
// found, scanning rows in order and columns as kind, start temperature, end
// temperature, duration. The returned error is an *Error except when the
// bounds themselves are invalid.
func Validate(steps []models.Step, b Bounds) error {
	if err := b.Check(); err != nil {
		return err
	}
	if len(steps) == 0 {
		return stepError(EmptySchedule, -1, "", "schedule has no steps")
	}

	for i, st := range steps {
		if _, ok := models.ParseStepKind(string(st.Kind)); !ok {
			return stepError(InvalidKind, i, "kind", "unknown step kind %q, want Ramp or Soak", st.Kind)
		}
		if !b.Contains(st.StartTempC) {
			return stepError(OutOfRangeTemperature, i, "start_temp_c",
				"start temperature %.1f outside %.0f..%.0f", st.StartTempC, b.MinC, b.MaxC)
		}
		if !b.Contains(st.EndTempC) {
			return stepError(OutOfRangeTemperature, i, "end_temp_c",
				"end temperature %.1f outside %.0f..%.0f", st.EndTempC, b.MinC, b.MaxC)
		}
		minutes, err := ParseDuration(st.Duration)
		if err != nil {
			return atStep(err, i)
		}
		if minutes <= 0 {
			return stepError(ZeroDuration, i, "duration", "duration %q must be longer than zero", st.Duration)
		}
	}
	return nil
}
