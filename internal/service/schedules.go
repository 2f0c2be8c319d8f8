package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/logger"
	"smartfurnace/internal/metrics"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

type ScheduleService struct {
	repo     repository.ScheduleRepo
	events   *recorder
	bounds   engine.Bounds
	log      *logger.Logger
	metrics  *metrics.Metrics
	onDelete func(name string)
}

func NewScheduleService(repo repository.ScheduleRepo, events *recorder, opts Options) *ScheduleService {
	opts = opts.withDefaults()
	return &ScheduleService{
		repo:    repo,
		events:  events,
		bounds:  opts.Bounds,
		log:     opts.Log,
		metrics: opts.Metrics,
	}
}

func (s *ScheduleService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *ScheduleService) Get(ctx context.Context, name string) (models.Schedule, error) {
	return s.repo.Load(ctx, strings.TrimSpace(name))
}

// Save validates the schedule and replaces any stored schedule of the same
// name. Steps are ordered by Position, renumbered 1..n and their kinds
// canonicalized. A rejected schedule leaves the store untouched.
func (s *ScheduleService) Save(ctx context.Context, sch models.Schedule) (models.Schedule, error) {
	sch.Name = strings.TrimSpace(sch.Name)
	if sch.Name == "" {
		return models.Schedule{}, ErrInvalidName
	}
	sch.Steps = normalizeSteps(sch.Steps)

	if err := engine.Validate(sch.Steps, s.bounds); err != nil {
		s.reject(ctx, sch.Name, err)
		return models.Schedule{}, err
	}
	if err := s.repo.Save(ctx, sch); err != nil {
		return models.Schedule{}, err
	}

	tl, err := engine.BuildTimeline(sch.Steps)
	if err != nil {
		return models.Schedule{}, err
	}
	s.log.Infow("schedule_saved", "schedule", sch.Name, "steps", len(sch.Steps), "total_minutes", tl.TotalMinutes)
	s.events.record(ctx, models.EventScheduleSaved, fmt.Sprintf("Schedule %q saved", sch.Name), map[string]any{
		"schedule":      sch.Name,
		"steps":         len(sch.Steps),
		"total_minutes": tl.TotalMinutes,
	})

	return s.repo.Load(ctx, sch.Name)
}

func (s *ScheduleService) reject(ctx context.Context, name string, err error) {
	meta := map[string]any{"schedule": name, "reason": err.Error()}
	var ee *engine.Error
	if errors.As(err, &ee) {
		s.metrics.ObserveRejected(ee.Kind)
		meta["kind"] = string(ee.Kind)
		if ee.Index >= 0 {
			meta["step"] = ee.Index + 1
		}
		if ee.Field != "" {
			meta["field"] = ee.Field
		}
	}
	s.log.Infow("schedule_rejected", "schedule", name, "err", err)
	s.events.record(ctx, models.EventValidationFailed, fmt.Sprintf("Schedule %q rejected", name), meta)
}

func (s *ScheduleService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	if s.onDelete != nil {
		s.onDelete(name)
	}
	s.metrics.Forget(name)
	s.log.Infow("schedule_deleted", "schedule", name)
	s.events.record(ctx, models.EventScheduleDeleted, fmt.Sprintf("Schedule %q deleted", name), map[string]any{"schedule": name})
	return nil
}

// normalizeSteps returns a copy ordered by Position and renumbered from 1.
// Kinds that parse are rewritten to their canonical spelling; the rest are
// kept verbatim so validation can report them.
func normalizeSteps(steps []models.Step) []models.Step {
	out := slices.Clone(steps)
	slices.SortStableFunc(out, func(a, b models.Step) int {
		return cmp.Compare(a.Position, b.Position)
	})
	for i := range out {
		out[i].Position = i + 1
		if k, ok := models.ParseStepKind(string(out[i].Kind)); ok {
			out[i].Kind = k
		}
		out[i].Duration = strings.TrimSpace(out[i].Duration)
	}
	if out == nil {
		out = []models.Step{}
	}
	return out
}
