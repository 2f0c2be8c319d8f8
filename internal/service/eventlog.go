package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

// EventLogService reads the furnace event log.
type EventLogService struct {
	repo repository.EventRepo
}

func NewEventLogService(repo repository.EventRepo) *EventLogService {
	return &EventLogService{repo: repo}
}

// normalizeFilter converts the bounds to UTC and canonicalizes the type.
// Zero bounds stay zero and mean unbounded.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	if !f.From.IsZero() {
		f.From = f.From.UTC()
	}
	if !f.To.IsZero() {
		f.To = f.To.UTC()
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return LogFilter{}, ErrInvalidFilter
	}

	typ := strings.ToUpper(strings.TrimSpace(f.Type))
	if typ != "" && !slices.Contains(models.EventTypes, typ) {
		return LogFilter{}, fmt.Errorf("%w %q", ErrUnknownEvent, f.Type)
	}
	f.Type = typ
	return f, nil
}

// List returns events in [From, To] of the given type, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.FurnaceEvent, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, f.From, f.To, f.Type)
}
