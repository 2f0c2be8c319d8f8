package service

import (
	"context"
	"strings"
	"time"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/repository"
)

type EvaluatorService struct {
	schedules repository.ScheduleRepo
	cycle     Cycle
	now       func() time.Time
}

func NewEvaluatorService(schedules repository.ScheduleRepo, cycle Cycle, now func() time.Time) *EvaluatorService {
	if now == nil {
		now = time.Now
	}
	return &EvaluatorService{schedules: schedules, cycle: cycle, now: now}
}

// Evaluate loads the named schedule and evaluates it against the process
// cycle start at now. A zero now means the current time.
func (s *EvaluatorService) Evaluate(ctx context.Context, name string, now time.Time) (engine.Evaluation, error) {
	sch, err := s.schedules.Load(ctx, strings.TrimSpace(name))
	if err != nil {
		return engine.Evaluation{}, err
	}
	st, ok, err := s.cycle.Current(ctx)
	if err != nil {
		return engine.Evaluation{}, err
	}

	var start time.Time
	if ok {
		start = st.StartedAt
	}
	if now.IsZero() {
		now = s.now()
	}
	return engine.Evaluate(sch.Steps, start, now)
}

func (s *EvaluatorService) Curve(ctx context.Context, name string) (engine.Curve, error) {
	sch, err := s.schedules.Load(ctx, strings.TrimSpace(name))
	if err != nil {
		return engine.Curve{}, err
	}
	return engine.BuildCurve(sch.Steps)
}

func (s *EvaluatorService) Commands(ctx context.Context, name string, program int) ([]engine.Command, error) {
	sch, err := s.schedules.Load(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return engine.Commands(sch.Steps, program)
}
