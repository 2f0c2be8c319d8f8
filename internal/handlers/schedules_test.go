package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
	"smartfurnace/internal/service"
)

func notFound(name string) error {
	return fmt.Errorf("%w: %q", repository.ErrScheduleNotFound, name)
}

func TestSchedules_List(t *testing.T) {
	r := newTestRouter(&service.Service{Schedules: &mockSchedules{names: []string{"bisque", "glaze"}}})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Count     int      `json:"count"`
		Schedules []string `json:"schedules"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || out.Schedules[1] != "glaze" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSchedules_List_Error(t *testing.T) {
	r := newTestRouter(&service.Service{Schedules: &mockSchedules{listErr: errors.New("db down")}})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSchedules_Get(t *testing.T) {
	ms := &mockSchedules{schedule: models.Schedule{Name: "bisque", Steps: []models.Step{{Position: 1, Kind: models.KindSoak, StartTempC: 100, Duration: "10 min"}}}}
	r := newTestRouter(&service.Service{Schedules: ms})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/bisque", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var s models.Schedule
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil || s.Name != "bisque" || len(s.Steps) != 1 {
		t.Fatalf("body = %s", w.Body.String())
	}
	if ms.lastGet != "bisque" {
		t.Fatalf("lastGet = %q", ms.lastGet)
	}

	ms.getErr = notFound("bisque")
	w = doRequest(r, http.MethodGet, "/api/v1/schedules/bisque", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status=%d", w.Code)
	}
}

func TestSchedules_Save(t *testing.T) {
	ms := &mockSchedules{}
	r := newTestRouter(&service.Service{Schedules: ms})

	body := `{"steps":[{"kind":"Ramp","start_temp_c":20,"end_temp_c":600,"duration":"02:00"},{"kind":"Soak","start_temp_c":600,"end_temp_c":600,"duration":"15 minutes"}]}`
	w := doRequest(r, http.MethodPut, "/api/v1/schedules/glaze", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ms.lastSaved.Name != "glaze" || len(ms.lastSaved.Steps) != 2 || ms.lastSaved.Steps[1].Duration != "15 minutes" {
		t.Fatalf("saved = %+v", ms.lastSaved)
	}
}

func TestSchedules_Save_BadBody(t *testing.T) {
	r := newTestRouter(&service.Service{Schedules: &mockSchedules{}})

	w := doRequest(r, http.MethodPut, "/api/v1/schedules/glaze", `{"steps":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSchedules_Save_ValidationError(t *testing.T) {
	ms := &mockSchedules{}
	r := newTestRouter(&service.Service{Schedules: ms})

	// produce a genuine engine error
	verr := engine.Validate([]models.Step{
		{Kind: models.KindRamp, StartTempC: 20, EndTempC: 100, Duration: "01:00"},
		{Kind: models.KindSoak, StartTempC: 100, EndTempC: 100, Duration: "00:00"},
	}, engine.DefaultBounds)
	ms.saveErr = verr

	w := doRequest(r, http.MethodPut, "/api/v1/schedules/glaze", `{"steps":[]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out ValidationError
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Kind != string(engine.ZeroDuration) || out.Index != 1 || out.Field != "duration" {
		t.Fatalf("body = %+v", out)
	}
}

func TestSchedules_Save_InvalidName(t *testing.T) {
	r := newTestRouter(&service.Service{Schedules: &mockSchedules{saveErr: service.ErrInvalidName}})

	w := doRequest(r, http.MethodPut, "/api/v1/schedules/%20", `{"steps":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSchedules_Delete(t *testing.T) {
	ms := &mockSchedules{}
	r := newTestRouter(&service.Service{Schedules: ms})

	w := doRequest(r, http.MethodDelete, "/api/v1/schedules/bisque", "")
	if w.Code != http.StatusOK || ms.lastDel != "bisque" {
		t.Fatalf("status=%d lastDel=%q", w.Code, ms.lastDel)
	}

	ms.delErr = notFound("bisque")
	w = doRequest(r, http.MethodDelete, "/api/v1/schedules/bisque", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSchedules_Curve(t *testing.T) {
	me := &mockEvaluator{curve: engine.Curve{
		Points:       []engine.Point{{Minutes: 0, TempC: 20}, {Minutes: 60, TempC: 200}},
		MinTempC:     20,
		MaxTempC:     200,
		TotalMinutes: 60,
	}}
	r := newTestRouter(&service.Service{Evaluator: me})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/curve", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var c engine.Curve
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil || len(c.Points) != 2 || c.MaxTempC != 200 {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSchedules_Evaluate(t *testing.T) {
	me := &mockEvaluator{eval: engine.Evaluation{
		Status:         engine.StatusRunning,
		ElapsedMinutes: 20,
		CurrentTempC:   temp(335.5),
		StepIndex:      0,
	}}
	r := newTestRouter(&service.Service{Evaluator: me})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/evaluate?at=2025-01-01T00:20:00Z", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !me.lastAt.Equal(time.Date(2025, 1, 1, 0, 20, 0, 0, time.UTC)) {
		t.Fatalf("lastAt = %v", me.lastAt)
	}
	var ev engine.Evaluation
	_ = json.Unmarshal(w.Body.Bytes(), &ev)
	if ev.CurrentTempC == nil || *ev.CurrentTempC != 335.5 {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/evaluate?at=yesterday", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad at status=%d", w.Code)
	}
}

func TestSchedules_Evaluate_NoReadingIsNull(t *testing.T) {
	me := &mockEvaluator{eval: engine.Evaluation{Status: engine.StatusNotStarted, StepIndex: -1}}
	r := newTestRouter(&service.Service{Evaluator: me})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/evaluate", "")
	var raw map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	if v, ok := raw["current_temp_c"]; !ok || v != nil {
		t.Fatalf("current_temp_c = %#v, want null", v)
	}
	if !me.lastAt.IsZero() {
		t.Fatalf("lastAt should be zero without ?at, got %v", me.lastAt)
	}
}

func TestSchedules_Commands(t *testing.T) {
	me := &mockEvaluator{cmds: []engine.Command{{Program: 3, Temperature: "PV=C3, SV=25", Time: "PV=t3, SV=11"}}}
	r := newTestRouter(&service.Service{Evaluator: me})

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/commands?program=3", "")
	if w.Code != http.StatusOK || me.lastProgram != 3 {
		t.Fatalf("status=%d program=%d", w.Code, me.lastProgram)
	}

	for _, q := range []string{"program=-1", "program=100", "program=x"} {
		w = doRequest(r, http.MethodGet, "/api/v1/schedules/bisque/commands?"+q, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s status=%d", q, w.Code)
		}
	}
}
