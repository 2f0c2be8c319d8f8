package engine

import (
	"time"

	"smartfurnace/internal/models"
)

// Status describes where the clock sits relative to the schedule.
type Status string

const (
	StatusEmpty         Status = "empty"           // schedule has no steps
	StatusNoActiveCycle Status = "no_active_cycle" // no cycle start recorded
	StatusNotStarted    Status = "not_started"     // cycle start is in the future
	StatusRunning       Status = "running"
	StatusComplete      Status = "complete" // past the last step, holding
)

// Evaluation is the result of one tick. CurrentTempC is nil whenever no
// reading is available; 0 is a valid temperature and is never used as a
// placeholder.
type Evaluation struct {
	Status           Status   `json:"status"`
	ElapsedMinutes   float64  `json:"elapsed_minutes"`
	RemainingMinutes float64  `json:"remaining_minutes"`
	CurrentTempC     *float64 `json:"current_temp_c"`
	StepIndex        int      `json:"step_index"` // -1 when no step governs
	Curve            Curve    `json:"curve"`
}

// Temperature unwraps CurrentTempC.
func (e Evaluation) Temperature() (float64, bool) {
	if e.CurrentTempC == nil {
		return 0, false
	}
	return *e.CurrentTempC, true
}

// Evaluate computes the target temperature at now for a cycle that began at
// cycleStart, along with the full curve. A zero cycleStart means no cycle is
// active. Malformed steps fail the call with an *Error.
func Evaluate(steps []models.Step, cycleStart, now time.Time) (Evaluation, error) {
	tl, err := BuildTimeline(steps)
	if err != nil {
		return Evaluation{StepIndex: -1, Curve: emptyCurve()}, err
	}
	return tl.Evaluate(cycleStart, now), nil
}

// Evaluate is Evaluate over an already built timeline.
func (tl Timeline) Evaluate(cycleStart, now time.Time) Evaluation {
	ev := Evaluation{
		StepIndex:        -1,
		RemainingMinutes: tl.TotalMinutes,
		Curve:            tl.Curve(),
	}
	if len(tl.Segments) == 0 {
		ev.Status = StatusEmpty
		return ev
	}
	if cycleStart.IsZero() {
		ev.Status = StatusNoActiveCycle
		return ev
	}

	elapsed := now.Sub(cycleStart).Minutes()
	ev.ElapsedMinutes = elapsed
	if elapsed < 0 {
		ev.Status = StatusNotStarted
		return ev
	}

	temp, _ := tl.Interpolate(elapsed)
	ev.CurrentTempC = &temp

	if i := tl.Locate(elapsed); i < len(tl.Segments) {
		ev.Status = StatusRunning
		ev.StepIndex = i
		ev.RemainingMinutes = tl.TotalMinutes - elapsed
	} else {
		ev.Status = StatusComplete
		ev.StepIndex = len(tl.Segments) - 1
		ev.RemainingMinutes = 0
	}
	return ev
}
