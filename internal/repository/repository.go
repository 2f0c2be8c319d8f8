package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartfurnace/internal/models"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepo persists named schedules as ordered step lists.
type ScheduleRepo interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (models.Schedule, error)
	Save(ctx context.Context, s models.Schedule) error
	Delete(ctx context.Context, name string) error
}

// CycleRepo stores the single process-wide cycle start. ok is false when no
// cycle has been started yet.
type CycleRepo interface {
	Read(ctx context.Context) (st models.CycleState, ok bool, err error)
	Write(ctx context.Context, st models.CycleState) error
}

type EventRepo interface {
	Append(ctx context.Context, e models.FurnaceEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.FurnaceEvent, error)
}

type Repository struct {
	Schedules ScheduleRepo
	Cycle     CycleRepo
	Events    EventRepo
}

// NewRepository backs every repo with db. A non-nil cycle replaces the
// cycle_state table, e.g. with a CycleFile.
func NewRepository(db *sql.DB, cycle CycleRepo) *Repository {
	if cycle == nil {
		cycle = NewCycleSQLite(db)
	}
	return &Repository{
		Schedules: NewScheduleSQLite(db),
		Cycle:     cycle,
		Events:    NewEventSQLite(db),
	}
}

// timeLayout is RFC 3339 with a fixed nine-digit fraction, always UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
