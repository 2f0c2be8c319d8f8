package engine

import (
	"fmt"
	"math"

	"smartfurnace/internal/models"
)

// MaxProgram is the highest program slot the controller accepts as a start.
const MaxProgram = 99

// Command is the pair of controller entries that programs one step.
type Command struct {
	Program     int    `json:"program"`
	Temperature string `json:"temperature"` // PV=C<n>, SV=<°C>
	Time        string `json:"time"`        // PV=t<n>, SV=<minutes>
}

// Commands renders the controller program for a schedule, one slot per step
// starting at initialProgram. Temperatures are truncated to whole degrees and
// times rounded up to whole minutes.
func Commands(steps []models.Step, initialProgram int) ([]Command, error) {
	if initialProgram < 0 || initialProgram > MaxProgram {
		return nil, fmt.Errorf("initial program %d outside 0..%d", initialProgram, MaxProgram)
	}
	tl, err := BuildTimeline(steps)
	if err != nil {
		return nil, err
	}

	out := make([]Command, 0, len(tl.Segments))
	for i, seg := range tl.Segments {
		n := initialProgram + i
		out = append(out, Command{
			Program:     n,
			Temperature: fmt.Sprintf("PV=C%d, SV=%d", n, int(seg.StartTempC())),
			Time:        fmt.Sprintf("PV=t%d, SV=%d", n, int(math.Ceil(seg.Minutes()))),
		})
	}
	return out, nil
}
