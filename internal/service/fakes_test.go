package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

// fakeScheduleRepo is an in-memory repository.ScheduleRepo.
type fakeScheduleRepo struct {
	mu      sync.Mutex
	byName  map[string]models.Schedule
	saves   int
	saveErr error
}

func newFakeScheduleRepo(ss ...models.Schedule) *fakeScheduleRepo {
	r := &fakeScheduleRepo{byName: map[string]models.Schedule{}}
	for _, s := range ss {
		r.byName[s.Name] = s
	}
	return r
}

func (r *fakeScheduleRepo) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names, nil
}

func (r *fakeScheduleRepo) Load(ctx context.Context, name string) (models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byName[name]
	if !ok {
		return models.Schedule{}, fmt.Errorf("%w: %q", repository.ErrScheduleNotFound, name)
	}
	s.Steps = slices.Clone(s.Steps)
	return s, nil
}

func (r *fakeScheduleRepo) Save(ctx context.Context, s models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	s.Steps = slices.Clone(s.Steps)
	r.byName[s.Name] = s
	return nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; !ok {
		return fmt.Errorf("%w: %q", repository.ErrScheduleNotFound, name)
	}
	delete(r.byName, name)
	return nil
}

// fakeCycleRepo is an in-memory repository.CycleRepo that counts reads.
type fakeCycleRepo struct {
	mu      sync.Mutex
	state   models.CycleState
	ok      bool
	reads   int
	readErr error
}

func (r *fakeCycleRepo) Read(ctx context.Context) (models.CycleState, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.readErr != nil {
		return models.CycleState{}, false, r.readErr
	}
	return r.state, r.ok, nil
}

func (r *fakeCycleRepo) Write(ctx context.Context, st models.CycleState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state, r.ok = st, true
	return nil
}

// fakeClock returns a settable time.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

var t0 = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

// bisque: ramp 20->200 over 60 min, soak 30 min, ramp 200->950 over 5 h.
func bisque() models.Schedule {
	return models.Schedule{
		Name: "bisque",
		Steps: []models.Step{
			{Position: 1, Kind: models.KindRamp, StartTempC: 20, EndTempC: 200, Duration: "01:00:00"},
			{Position: 2, Kind: models.KindSoak, StartTempC: 200, EndTempC: 200, Duration: "30 minutes"},
			{Position: 3, Kind: models.KindRamp, StartTempC: 200, EndTempC: 950, Duration: "05:00"},
		},
	}
}

// fakeEventRepo records appends and answers List from a fixed slice.
type fakeEventRepo struct {
	mu        sync.Mutex
	appended  []models.FurnaceEvent
	appendErr error

	events  []models.FurnaceEvent
	listErr error
	queries []LogFilter
}

func (f *fakeEventRepo) Append(_ context.Context, e models.FurnaceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.FurnaceEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, LogFilter{From: from, To: to, Type: typ})
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}
