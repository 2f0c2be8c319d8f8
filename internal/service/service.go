package service

import (
	"context"
	"time"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/logger"
	"smartfurnace/internal/metrics"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

// Schedules manages stored firing schedules. Save is the validation gate:
// nothing invalid reaches the store.
type Schedules interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (models.Schedule, error)
	Save(ctx context.Context, s models.Schedule) (models.Schedule, error)
	Delete(ctx context.Context, name string) error
}

// Cycle owns the single process-wide cycle start.
type Cycle interface {
	Start(ctx context.Context, schedule string) (models.CycleState, error)
	Current(ctx context.Context) (models.CycleState, bool, error)
}

// Evaluator runs the engine against stored schedules.
type Evaluator interface {
	Evaluate(ctx context.Context, name string, now time.Time) (engine.Evaluation, error)
	Curve(ctx context.Context, name string) (engine.Curve, error)
	Commands(ctx context.Context, name string, program int) ([]engine.Command, error)
}

// Selection holds the schedule the tracker follows.
type Selection interface {
	Select(ctx context.Context, name string) error
	Selected() (string, bool)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.FurnaceEvent, error)
}

// Tracker runs the background loop that evaluates the selected schedule.
// Stop via context cancellation for graceful shutdown.
type Tracker interface {
	Run(ctx context.Context, tick time.Duration)
	Latest() (Reading, bool)
}

type Service struct {
	Schedules
	Cycle
	Evaluator
	Selection
	EventLog
	Tracker
}

// Options carries the cross-cutting dependencies. Zero values fall back to
// DefaultBounds, a no-op logger, no metrics and the wall clock.
type Options struct {
	Bounds  engine.Bounds
	Log     *logger.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Bounds == (engine.Bounds{}) {
		o.Bounds = engine.DefaultBounds
	}
	if o.Log == nil {
		o.Log = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	rec := newRecorder(repos.Events, opts.Log, opts.Now)

	selection := NewSelectionService(repos.Schedules, opts.Metrics)
	schedules := NewScheduleService(repos.Schedules, rec, opts)
	schedules.onDelete = selection.forget
	cycle := NewCycleService(repos.Cycle, repos.Schedules, rec, opts)
	evaluator := NewEvaluatorService(repos.Schedules, cycle, opts.Now)
	tracker := NewTrackerService(evaluator, selection, cycle, rec, opts)

	return &Service{
		Schedules: schedules,
		Cycle:     cycle,
		Evaluator: evaluator,
		Selection: selection,
		EventLog:  NewEventLogService(repos.Events),
		Tracker:   tracker,
	}
}
