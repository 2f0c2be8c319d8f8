package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/models"
	"smartfurnace/internal/service"
)

// ---- Service Mocks ----

type mockSchedules struct {
	names    []string
	listErr  error
	schedule models.Schedule
	getErr   error
	saveErr  error
	delErr   error

	lastGet   string
	lastSaved models.Schedule
	lastDel   string
}

func (m *mockSchedules) List(ctx context.Context) ([]string, error) {
	return m.names, m.listErr
}
func (m *mockSchedules) Get(ctx context.Context, name string) (models.Schedule, error) {
	m.lastGet = name
	return m.schedule, m.getErr
}
func (m *mockSchedules) Save(ctx context.Context, s models.Schedule) (models.Schedule, error) {
	m.lastSaved = s
	if m.saveErr != nil {
		return models.Schedule{}, m.saveErr
	}
	return s, nil
}
func (m *mockSchedules) Delete(ctx context.Context, name string) error {
	m.lastDel = name
	return m.delErr
}

type mockCycle struct {
	state      models.CycleState
	active     bool
	startErr   error
	currentErr error

	lastStart   string
	startCalled int
}

func (m *mockCycle) Start(ctx context.Context, schedule string) (models.CycleState, error) {
	m.startCalled++
	m.lastStart = schedule
	if m.startErr != nil {
		return models.CycleState{}, m.startErr
	}
	m.state, m.active = models.CycleState{StartedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Schedule: schedule}, true
	return m.state, nil
}
func (m *mockCycle) Current(ctx context.Context) (models.CycleState, bool, error) {
	return m.state, m.active, m.currentErr
}

type mockEvaluator struct {
	eval     engine.Evaluation
	evalErr  error
	curve    engine.Curve
	curveErr error
	cmds     []engine.Command
	cmdErr   error

	lastName    string
	lastAt      time.Time
	lastProgram int
}

func (m *mockEvaluator) Evaluate(ctx context.Context, name string, now time.Time) (engine.Evaluation, error) {
	m.lastName = name
	m.lastAt = now
	return m.eval, m.evalErr
}
func (m *mockEvaluator) Curve(ctx context.Context, name string) (engine.Curve, error) {
	m.lastName = name
	return m.curve, m.curveErr
}
func (m *mockEvaluator) Commands(ctx context.Context, name string, program int) ([]engine.Command, error) {
	m.lastName = name
	m.lastProgram = program
	return m.cmds, m.cmdErr
}

type mockSelection struct {
	name      string
	selectErr error
}

func (m *mockSelection) Select(ctx context.Context, name string) error {
	if m.selectErr != nil {
		return m.selectErr
	}
	m.name = name
	return nil
}
func (m *mockSelection) Selected() (string, bool) {
	return m.name, m.name != ""
}

type mockTracker struct {
	reading service.Reading
	have    bool
}

func (m *mockTracker) Run(ctx context.Context, tick time.Duration) {}
func (m *mockTracker) Latest() (service.Reading, bool) {
	return m.reading, m.have
}

type mockEventLog struct {
	resp     []models.FurnaceEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.FurnaceEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func temp(v float64) *float64 { return &v }

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
