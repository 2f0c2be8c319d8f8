package engine

import (
	"cmp"
	"math"
	"slices"

	"smartfurnace/internal/models"
)

// Segment is one step placed on the schedule timeline, in minutes from the
// cycle start.
type Segment struct {
	Index        int
	Step         models.Step
	Kind         models.StepKind
	StartMinutes float64
	EndMinutes   float64
	minutes      float64
}

// Minutes is the parsed step duration.
func (s Segment) Minutes() float64 { return s.minutes }

// StartTempC is the temperature at the start of the segment.
func (s Segment) StartTempC() float64 { return s.Step.StartTempC }

// EndTempC is the temperature at the end of the segment. A soak holds its
// start temperature whatever end value is stored.
func (s Segment) EndTempC() float64 {
	if s.Kind == models.KindSoak {
		return s.Step.StartTempC
	}
	return s.Step.EndTempC
}

// TempAt returns the target temperature at elapsed minutes, which must fall
// inside the segment.
func (s Segment) TempAt(elapsed float64) float64 {
	if s.Kind == models.KindSoak || s.EndMinutes == s.StartMinutes {
		return s.StartTempC()
	}
	delta := s.EndTempC() - s.StartTempC()
	return s.StartTempC() + delta*(elapsed-s.StartMinutes)/(s.EndMinutes-s.StartMinutes)
}

// Timeline is the cumulative-offset layout of a schedule.
type Timeline struct {
	Segments     []Segment
	TotalMinutes float64
}

// BuildTimeline parses every step and lays them out back to back. A step
// whose duration or kind cannot be parsed fails the whole call; steps are
// never dropped. Zero durations are not rejected here, that is Validate's
// job before a schedule is stored.
func BuildTimeline(steps []models.Step) (Timeline, error) {
	ordered := orderSteps(steps)

	tl := Timeline{Segments: make([]Segment, 0, len(ordered))}
	offset := 0.0
	for i, st := range ordered {
		kind, ok := models.ParseStepKind(string(st.Kind))
		if !ok {
			return Timeline{}, stepError(InvalidKind, i, "kind", "unknown step kind %q", st.Kind)
		}
		minutes, err := ParseDuration(st.Duration)
		if err != nil {
			return Timeline{}, atStep(err, i)
		}
		tl.Segments = append(tl.Segments, Segment{
			Index:        i,
			Step:         st,
			Kind:         kind,
			StartMinutes: offset,
			EndMinutes:   offset + minutes,
			minutes:      minutes,
		})
		offset += minutes
	}
	tl.TotalMinutes = offset
	return tl, nil
}

// orderSteps returns a copy sorted by Position. Steps without positions keep
// their slice order.
func orderSteps(steps []models.Step) []models.Step {
	out := slices.Clone(steps)
	slices.SortStableFunc(out, func(a, b models.Step) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return out
}

// Locate returns the index of the segment governing elapsed minutes. At a
// shared boundary the earlier segment wins. It returns -1 before the start
// or for an empty timeline, and len(Segments) past the end.
func (tl Timeline) Locate(elapsed float64) int {
	if len(tl.Segments) == 0 || elapsed < 0 || math.IsNaN(elapsed) {
		return -1
	}
	if elapsed > tl.TotalMinutes {
		return len(tl.Segments)
	}
	i, _ := slices.BinarySearchFunc(tl.Segments, elapsed, func(s Segment, t float64) int {
		return cmp.Compare(s.EndMinutes, t)
	})
	if i == len(tl.Segments) {
		i--
	}
	return i
}

// Interpolate returns the target temperature at elapsed minutes. The second
// result is false before the cycle starts or when there are no steps. Past the
// end the schedule holds at the final temperature.
func (tl Timeline) Interpolate(elapsed float64) (float64, bool) {
	i := tl.Locate(elapsed)
	switch {
	case i < 0:
		return 0, false
	case i == len(tl.Segments):
		return tl.Segments[i-1].EndTempC(), true
	default:
		return tl.Segments[i].TempAt(elapsed), true
	}
}
