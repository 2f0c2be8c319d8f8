package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smartfurnace/internal/logger"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

// recorder appends audit events. A failed append is logged and never fails
// the operation that produced the event.
type recorder struct {
	repo repository.EventRepo
	log  *logger.Logger
	now  func() time.Time
}

func newRecorder(repo repository.EventRepo, log *logger.Logger, now func() time.Time) *recorder {
	return &recorder{repo: repo, log: log, now: now}
}

func (r *recorder) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if r == nil || r.repo == nil {
		return
	}
	ev := models.FurnaceEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  r.now().UTC(),
		Type:        typ,
		Description: desc,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := r.repo.Append(ctx, ev); err != nil {
		r.log.Warnw("event_append_failed", "type", typ, "err", err)
	}
}
