package repository

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartfurnace/internal/models"
)

// CycleFile keeps the cycle start in a small text file: an ISO-8601
// timestamp on the first line, optionally followed by the schedule name.
type CycleFile struct {
	path string
}

func NewCycleFile(path string) *CycleFile {
	return &CycleFile{path: path}
}

var _ CycleRepo = (*CycleFile)(nil)

// naive ISO-8601 forms written without an offset; read as local time
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

func (f *CycleFile) Read(_ context.Context) (models.CycleState, bool, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.CycleState{}, false, nil
		}
		return models.CycleState{}, false, fmt.Errorf("read cycle file %q: %w", f.path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(b))
	var lines []string
	for sc.Scan() && len(lines) < 2 {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if len(lines) == 0 || lines[0] == "" {
		return models.CycleState{}, false, nil
	}

	started, err := parseISO(lines[0])
	if err != nil {
		return models.CycleState{}, false, fmt.Errorf("parse cycle file %q: %w", f.path, err)
	}
	st := models.CycleState{StartedAt: started}
	if len(lines) > 1 {
		st.Schedule = lines[1]
	}
	return st, true, nil
}

// Write replaces the file atomically via a temp file and rename.
func (f *CycleFile) Write(_ context.Context, st models.CycleState) error {
	started := st.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	body := started.UTC().Format(time.RFC3339Nano) + "\n"
	if st.Schedule != "" {
		body += st.Schedule + "\n"
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cycle file directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".cycle-*")
	if err != nil {
		return fmt.Errorf("create temp cycle file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp cycle file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cycle file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace cycle file %q: %w", f.path, err)
	}
	return nil
}

func parseISO(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected ISO-8601", s)
}
