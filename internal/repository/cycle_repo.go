package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smartfurnace/internal/models"
)

// CycleSQLite keeps the cycle start in the single-row cycle_state table.
type CycleSQLite struct {
	db *sql.DB
}

func NewCycleSQLite(db *sql.DB) *CycleSQLite {
	return &CycleSQLite{db: db}
}

var _ CycleRepo = (*CycleSQLite)(nil)

const (
	cycleStateRowID = 1

	upsertCycleSQL = `
		INSERT INTO cycle_state (id, started_at, schedule)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at=excluded.started_at,
			schedule=excluded.schedule
	`

	selectCycleSQL = `SELECT started_at, schedule FROM cycle_state WHERE id=?`
)

// Write replaces the stored cycle start. A zero StartedAt means now.
func (r *CycleSQLite) Write(ctx context.Context, st models.CycleState) error {
	started := st.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	if _, err := r.db.ExecContext(ctx, upsertCycleSQL, cycleStateRowID, formatTime(started), st.Schedule); err != nil {
		return fmt.Errorf("write cycle start: %w", err)
	}
	return nil
}

// Read fetches the cycle start row (id=1).
func (r *CycleSQLite) Read(ctx context.Context) (models.CycleState, bool, error) {
	var startedStr, schedule string
	err := r.db.QueryRowContext(ctx, selectCycleSQL, cycleStateRowID).Scan(&startedStr, &schedule)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CycleState{}, false, nil // never started
		}
		return models.CycleState{}, false, fmt.Errorf("read cycle start: %w", err)
	}

	started, err := parseTime(startedStr)
	if err != nil {
		return models.CycleState{}, false, fmt.Errorf("parse cycle start %q: %w", startedStr, err)
	}
	return models.CycleState{StartedAt: started, Schedule: schedule}, true, nil
}
