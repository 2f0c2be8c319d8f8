package service

import (
	"context"
	"strings"
	"sync"

	"smartfurnace/internal/metrics"
	"smartfurnace/internal/repository"
)

// SelectionService keeps the selected schedule name in memory. An empty
// name clears the selection.
type SelectionService struct {
	schedules repository.ScheduleRepo
	metrics   *metrics.Metrics

	mu   sync.RWMutex
	name string
}

func NewSelectionService(schedules repository.ScheduleRepo, m *metrics.Metrics) *SelectionService {
	return &SelectionService{schedules: schedules, metrics: m}
}

func (s *SelectionService) Select(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name != "" {
		if _, err := s.schedules.Load(ctx, name); err != nil {
			return err
		}
	}

	s.mu.Lock()
	prev := s.name
	s.name = name
	s.mu.Unlock()

	if prev != "" && prev != name {
		s.metrics.Forget(prev)
	}
	return nil
}

func (s *SelectionService) Selected() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name, s.name != ""
}

// forget clears the selection if it names a deleted schedule.
func (s *SelectionService) forget(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name == name {
		s.name = ""
	}
}
