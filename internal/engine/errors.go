// Package engine evaluates firing schedules: it parses step durations, lays
// the steps out on a cumulative timeline, interpolates the target temperature
// at an elapsed time and produces the plot curve. It performs no I/O and
// never mutates its input.
package engine

import "fmt"

// ErrorKind classifies a schedule problem.
type ErrorKind string

const (
	InvalidDurationFormat ErrorKind = "InvalidDurationFormat"
	ZeroDuration          ErrorKind = "ZeroDuration"
	OutOfRangeTemperature ErrorKind = "OutOfRangeTemperature"
	InvalidKind           ErrorKind = "InvalidKind"
	EmptySchedule         ErrorKind = "EmptySchedule"
)

// Error reports the first offending step of a schedule. Index is the 0-based
// position in the step slice, or -1 when the problem is not tied to one step.
type Error struct {
	Kind   ErrorKind `json:"kind"`
	Index  int       `json:"index"`
	Field  string    `json:"field,omitempty"`
	Reason string    `json:"reason"`
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("step %d: %s: %s", e.Index+1, e.Kind, e.Reason)
}

// Is matches any *Error with the same Kind, so errors.Is(err, ErrZeroDuration)
// works regardless of index.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidDuration = &Error{Kind: InvalidDurationFormat, Index: -1}
	ErrZeroDuration    = &Error{Kind: ZeroDuration, Index: -1}
	ErrOutOfRange      = &Error{Kind: OutOfRangeTemperature, Index: -1}
	ErrInvalidKind     = &Error{Kind: InvalidKind, Index: -1}
	ErrEmptySchedule   = &Error{Kind: EmptySchedule, Index: -1}
)

func stepError(kind ErrorKind, index int, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Index: index, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// atStep copies err with its index set to i.
func atStep(err error, i int) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	cp := *e
	cp.Index = i
	return &cp
}
