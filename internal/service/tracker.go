package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/logger"
	"smartfurnace/internal/metrics"
	"smartfurnace/internal/models"
)

// TrackerService evaluates the followed schedule every tick and keeps the
// latest reading. The followed schedule is the selection, or the schedule
// recorded with the cycle start when nothing is selected.
type TrackerService struct {
	eval      Evaluator
	selection Selection
	cycle     Cycle
	events    *recorder
	log       *logger.Logger
	metrics   *metrics.Metrics

	mu     sync.RWMutex
	latest Reading
	have   bool

	// transition state, only touched by observe
	seen bool
	last trackState
}

type trackState struct {
	schedule string
	start    time.Time
	status   engine.Status
	step     int
}

func NewTrackerService(eval Evaluator, selection Selection, cycle Cycle, events *recorder, opts Options) *TrackerService {
	opts = opts.withDefaults()
	return &TrackerService{
		eval:      eval,
		selection: selection,
		cycle:     cycle,
		events:    events,
		log:       opts.Log,
		metrics:   opts.Metrics,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (t *TrackerService) Run(ctx context.Context, tick time.Duration) {
	t.observe(ctx, time.Now())

	tk := time.NewTicker(tick)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			t.observe(ctx, now)
		}
	}
}

// Latest returns the most recent reading; ok is false before the first tick.
func (t *TrackerService) Latest() (Reading, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.latest, t.have
}

func (t *TrackerService) observe(ctx context.Context, now time.Time) {
	r := Reading{At: now.UTC()}

	st, active, err := t.cycle.Current(ctx)
	if err != nil {
		t.fail(r, err)
		return
	}
	name, ok := t.selection.Selected()
	if !ok && active {
		name, ok = st.Schedule, st.Schedule != ""
	}
	if !ok {
		t.store(Reading{At: r.At, Error: ErrNoSelection.Error()})
		return
	}
	r.Schedule = name

	ev, err := t.eval.Evaluate(ctx, name, now)
	if err != nil {
		t.fail(r, err)
		return
	}
	r.Evaluation = ev
	t.metrics.ObserveEvaluation(name, ev)

	var start time.Time
	if active {
		start = st.StartedAt
	}
	t.transition(ctx, trackState{schedule: name, start: start, status: ev.Status, step: ev.StepIndex}, ev)
	t.store(r)
}

func (t *TrackerService) fail(r Reading, err error) {
	t.metrics.ObserveError()
	t.log.Warnw("tracker_evaluate_failed", "schedule", r.Schedule, "err", err)
	r.Evaluation = engine.Evaluation{StepIndex: -1}
	r.Error = err.Error()
	t.store(r)
}

func (t *TrackerService) store(r Reading) {
	t.mu.Lock()
	t.latest, t.have = r, true
	t.mu.Unlock()
}

// transition appends STEP_CHANGE when a new step begins and CYCLE_COMPLETE
// when a running cycle passes its last step. The first observation after
// process start only primes the state.
func (t *TrackerService) transition(ctx context.Context, cur trackState, ev engine.Evaluation) {
	prev, seen := t.last, t.seen
	t.last, t.seen = cur, true
	if !seen {
		return
	}
	if prev.schedule != cur.schedule || !prev.start.Equal(cur.start) {
		prev.status, prev.step = "", -1
	}

	switch cur.status {
	case engine.StatusRunning:
		if prev.status == engine.StatusRunning && prev.step == cur.step {
			return
		}
		meta := map[string]any{
			"schedule":        cur.schedule,
			"step":            cur.step + 1,
			"elapsed_minutes": ev.ElapsedMinutes,
		}
		if temp, ok := ev.Temperature(); ok {
			meta["target_temp_c"] = temp
		}
		t.log.Infow("step_change", "schedule", cur.schedule, "step", cur.step+1)
		t.events.record(ctx, models.EventStepChange,
			fmt.Sprintf("Schedule %q entered step %d", cur.schedule, cur.step+1), meta)

	case engine.StatusComplete:
		if prev.status != engine.StatusRunning {
			return
		}
		t.log.Infow("cycle_complete", "schedule", cur.schedule)
		t.events.record(ctx, models.EventCycleComplete,
			fmt.Sprintf("Schedule %q complete", cur.schedule), map[string]any{
				"schedule":        cur.schedule,
				"elapsed_minutes": ev.ElapsedMinutes,
			})
	}
}
