package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smartfurnace/internal/models"
)

// ScheduleSQLite stores schedules in the normalized schedules and
// schedule_entries tables.
type ScheduleSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewScheduleSQLite(db *sql.DB) *ScheduleSQLite {
	return &ScheduleSQLite{db: db, now: time.Now}
}

var _ ScheduleRepo = (*ScheduleSQLite)(nil)

const (
	listSchedulesSQL = `SELECT name FROM schedules ORDER BY name`

	selectScheduleSQL = `SELECT id, name, created_at, modified_at FROM schedules WHERE name = ?`

	selectEntriesSQL = `
		SELECT position, cycle_type, start_temp, end_temp, duration, notes
		FROM schedule_entries WHERE schedule_id = ? ORDER BY position ASC
	`

	upsertScheduleSQL = `
		INSERT INTO schedules (name, created_at, modified_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET modified_at=excluded.modified_at
	`

	selectScheduleIDSQL = `SELECT id FROM schedules WHERE name = ?`

	deleteEntriesSQL = `DELETE FROM schedule_entries WHERE schedule_id = ?`

	insertEntrySQL = `
		INSERT INTO schedule_entries (schedule_id, position, cycle_type, start_temp, end_temp, duration, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	deleteEntriesByNameSQL = `
		DELETE FROM schedule_entries WHERE schedule_id IN (SELECT id FROM schedules WHERE name = ?)
	`

	deleteScheduleSQL = `DELETE FROM schedules WHERE name = ?`
)

// List returns schedule names in alphabetical order.
func (r *ScheduleSQLite) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listSchedulesSQL)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan schedule name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return names, nil
}

// Load returns the schedule with its steps in position order, or
// ErrScheduleNotFound.
func (r *ScheduleSQLite) Load(ctx context.Context, name string) (models.Schedule, error) {
	var (
		id                int64
		s                 models.Schedule
		created, modified string
	)
	err := r.db.QueryRowContext(ctx, selectScheduleSQL, name).Scan(&id, &s.Name, &created, &modified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Schedule{}, fmt.Errorf("%w: %q", ErrScheduleNotFound, name)
		}
		return models.Schedule{}, fmt.Errorf("select schedule %q: %w", name, err)
	}
	if s.CreatedAt, err = parseTime(created); err != nil {
		return models.Schedule{}, fmt.Errorf("parse created_at of %q: %w", name, err)
	}
	if s.ModifiedAt, err = parseTime(modified); err != nil {
		return models.Schedule{}, fmt.Errorf("parse modified_at of %q: %w", name, err)
	}

	rows, err := r.db.QueryContext(ctx, selectEntriesSQL, id)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("select entries of %q: %w", name, err)
	}
	defer rows.Close()

	s.Steps = make([]models.Step, 0, 8)
	for rows.Next() {
		var st models.Step
		var kind string
		if err := rows.Scan(&st.Position, &kind, &st.StartTempC, &st.EndTempC, &st.Duration, &st.Notes); err != nil {
			return models.Schedule{}, fmt.Errorf("scan entry of %q: %w", name, err)
		}
		st.Kind = models.StepKind(kind)
		s.Steps = append(s.Steps, st)
	}
	if err := rows.Err(); err != nil {
		return models.Schedule{}, fmt.Errorf("select entries of %q: %w", name, err)
	}
	return s, nil
}

// Save replaces the schedule's steps in one transaction. Positions are
// written 1..n in slice order; created_at survives a replace.
func (r *ScheduleSQLite) Save(ctx context.Context, s models.Schedule) error {
	ts := formatTime(r.now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save %q: %w", s.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, upsertScheduleSQL, s.Name, ts, ts); err != nil {
		return fmt.Errorf("upsert schedule %q: %w", s.Name, err)
	}
	var id int64
	if err := tx.QueryRowContext(ctx, selectScheduleIDSQL, s.Name).Scan(&id); err != nil {
		return fmt.Errorf("select id of %q: %w", s.Name, err)
	}
	if _, err := tx.ExecContext(ctx, deleteEntriesSQL, id); err != nil {
		return fmt.Errorf("clear entries of %q: %w", s.Name, err)
	}
	for i, st := range s.Steps {
		if _, err := tx.ExecContext(ctx, insertEntrySQL,
			id,
			i+1,
			string(st.Kind),
			st.StartTempC,
			st.EndTempC,
			st.Duration,
			st.Notes,
		); err != nil {
			return fmt.Errorf("insert step %d of %q: %w", i+1, s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save %q: %w", s.Name, err)
	}
	return nil
}

// Delete removes the schedule and its steps, or returns ErrScheduleNotFound.
func (r *ScheduleSQLite) Delete(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete %q: %w", name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteEntriesByNameSQL, name); err != nil {
		return fmt.Errorf("delete entries of %q: %w", name, err)
	}
	res, err := tx.ExecContext(ctx, deleteScheduleSQL, name)
	if err != nil {
		return fmt.Errorf("delete schedule %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected deleting %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrScheduleNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %q: %w", name, err)
	}
	return nil
}
