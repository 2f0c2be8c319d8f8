package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smartfurnace/internal/logger"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

// CycleService reads the cycle start once and serves it from memory until
// the next Start. The mutex covers the tracker loop and API requests.
type CycleService struct {
	repo      repository.CycleRepo
	schedules repository.ScheduleRepo
	events    *recorder
	log       *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	loaded bool
	active bool
	state  models.CycleState
}

func NewCycleService(repo repository.CycleRepo, schedules repository.ScheduleRepo, events *recorder, opts Options) *CycleService {
	opts = opts.withDefaults()
	return &CycleService{
		repo:      repo,
		schedules: schedules,
		events:    events,
		log:       opts.Log,
		now:       opts.Now,
	}
}

// Start marks now as the beginning of the cycle, replacing any earlier
// start. A non-empty schedule must exist; it is recorded for reference only.
func (s *CycleService) Start(ctx context.Context, schedule string) (models.CycleState, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule != "" && s.schedules != nil {
		if _, err := s.schedules.Load(ctx, schedule); err != nil {
			return models.CycleState{}, err
		}
	}

	st := models.CycleState{StartedAt: s.now().UTC(), Schedule: schedule}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Write(ctx, st); err != nil {
		return models.CycleState{}, err
	}
	s.state, s.active, s.loaded = st, true, true

	s.log.Infow("cycle_started", "started_at", st.StartedAt, "schedule", schedule)
	meta := map[string]any{"started_at": st.StartedAt}
	if schedule != "" {
		meta["schedule"] = schedule
	}
	s.events.record(ctx, models.EventCycleStart, "Firing cycle started", meta)
	return st, nil
}

// Current returns the recorded cycle start. ok is false when none exists.
// A failed read is not cached, so the next call retries.
func (s *CycleService) Current(ctx context.Context) (models.CycleState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.state, s.active, nil
	}

	st, ok, err := s.repo.Read(ctx)
	if err != nil {
		return models.CycleState{}, false, fmt.Errorf("load cycle start: %w", err)
	}
	s.state, s.active, s.loaded = st, ok, true
	return st, ok, nil
}
