package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartfurnace/internal/models"
)

func TestNormalizeFilter(t *testing.T) {
	t.Parallel()

	plus2 := time.FixedZone("UTC+2", 2*3600)
	minus2 := time.FixedZone("UTC-2", -2*3600)

	tests := []struct {
		name    string
		in      LogFilter
		want    LogFilter
		wantErr error
	}{
		{
			name: "empty filter is unbounded",
			in:   LogFilter{},
			want: LogFilter{},
		},
		{
			name: "bounds converted to UTC",
			in: LogFilter{
				From: time.Date(2025, 9, 10, 10, 0, 0, 0, plus2),
				To:   time.Date(2025, 9, 10, 12, 30, 0, 0, minus2),
			},
			want: LogFilter{
				From: time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 9, 10, 14, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "type trimmed and upper-cased",
			in:   LogFilter{Type: "  step_change "},
			want: LogFilter{Type: models.EventStepChange},
		},
		{
			name: "equal bounds allowed",
			in: LogFilter{
				From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			want: LogFilter{
				From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "from after to",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidFilter,
		},
		{
			name:    "unknown type",
			in:      LogFilter{Type: "telemetry"},
			wantErr: ErrUnknownEvent,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if !got.From.Equal(tc.want.From) || !got.To.Equal(tc.want.To) || got.Type != tc.want.Type {
				t.Fatalf("normalizeFilter = %+v, want %+v", got, tc.want)
			}
			if !got.From.IsZero() && got.From.Location() != time.UTC {
				t.Errorf("from location = %v, want UTC", got.From.Location())
			}
		})
	}
}

func TestEventLogService_List(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{events: []models.FurnaceEvent{{EventID: "1", Type: models.EventCycleStart}}}
	svc := NewEventLogService(repo)

	from := time.Date(2025, 10, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	out, err := svc.List(context.Background(), LogFilter{From: from, Type: "cycle_start"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}

	if len(repo.queries) != 1 {
		t.Fatalf("repo queried %d times, want 1", len(repo.queries))
	}
	q := repo.queries[0]
	if !q.From.Equal(time.Date(2025, 10, 1, 5, 0, 0, 0, time.UTC)) || !q.To.IsZero() || q.Type != models.EventCycleStart {
		t.Fatalf("repo got %+v", q)
	}
}

func TestEventLogService_List_InvalidFilterSkipsRepo(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	_, err := NewEventLogService(repo).List(context.Background(), LogFilter{Type: "nope"})
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err = %v, want ErrUnknownEvent", err)
	}
	if len(repo.queries) != 0 {
		t.Fatalf("repo should not be queried, got %d calls", len(repo.queries))
	}
}

func TestEventLogService_List_RepoError(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{listErr: errors.New("db down")}
	_, err := NewEventLogService(repo).List(context.Background(), LogFilter{})
	if !errors.Is(err, repo.listErr) {
		t.Fatalf("err = %v, want repo error", err)
	}
}
