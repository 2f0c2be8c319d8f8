package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/models"
	"smartfurnace/internal/repository"
)

func newEvaluatorSvc(schedules *fakeScheduleRepo, cycle *fakeCycleRepo, clock *fakeClock) *EvaluatorService {
	opts := Options{Now: clock.Now}.withDefaults()
	cs := NewCycleService(cycle, schedules, nil, opts)
	return NewEvaluatorService(schedules, cs, clock.Now)
}

func TestEvaluatorService_Evaluate_UsesCycleStart(t *testing.T) {
	clock := &fakeClock{t: t0.Add(30 * time.Minute)}
	svc := newEvaluatorSvc(newFakeScheduleRepo(bisque()),
		&fakeCycleRepo{state: models.CycleState{StartedAt: t0}, ok: true}, clock)

	ev, err := svc.Evaluate(context.Background(), "bisque", time.Time{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	temp, ok := ev.Temperature()
	if !ok || temp != 110 {
		t.Fatalf("temp = %v, %v; want 110", temp, ok)
	}
	if ev.Status != engine.StatusRunning || ev.StepIndex != 0 {
		t.Fatalf("ev = %+v", ev)
	}
}

func TestEvaluatorService_Evaluate_ExplicitNow(t *testing.T) {
	svc := newEvaluatorSvc(newFakeScheduleRepo(bisque()),
		&fakeCycleRepo{state: models.CycleState{StartedAt: t0}, ok: true}, &fakeClock{t: t0})

	ev, err := svc.Evaluate(context.Background(), "bisque", t0.Add(75*time.Minute))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if temp, _ := ev.Temperature(); temp != 200 || ev.StepIndex != 1 {
		t.Fatalf("ev = %+v", ev)
	}
}

func TestEvaluatorService_Evaluate_NoCycle(t *testing.T) {
	svc := newEvaluatorSvc(newFakeScheduleRepo(bisque()), &fakeCycleRepo{}, &fakeClock{t: t0})

	ev, err := svc.Evaluate(context.Background(), "bisque", time.Time{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Status != engine.StatusNoActiveCycle || ev.CurrentTempC != nil {
		t.Fatalf("ev = %+v", ev)
	}
	if len(ev.Curve.Points) != 6 {
		t.Fatalf("curve points = %d", len(ev.Curve.Points))
	}
}

func TestEvaluatorService_UnknownSchedule(t *testing.T) {
	svc := newEvaluatorSvc(newFakeScheduleRepo(), &fakeCycleRepo{}, &fakeClock{t: t0})

	if _, err := svc.Evaluate(context.Background(), "x", time.Time{}); !errors.Is(err, repository.ErrScheduleNotFound) {
		t.Fatalf("Evaluate err = %v", err)
	}
	if _, err := svc.Curve(context.Background(), "x"); !errors.Is(err, repository.ErrScheduleNotFound) {
		t.Fatalf("Curve err = %v", err)
	}
	if _, err := svc.Commands(context.Background(), "x", 0); !errors.Is(err, repository.ErrScheduleNotFound) {
		t.Fatalf("Commands err = %v", err)
	}
}

func TestEvaluatorService_CurveAndCommands(t *testing.T) {
	svc := newEvaluatorSvc(newFakeScheduleRepo(bisque()), &fakeCycleRepo{}, &fakeClock{t: t0})

	c, err := svc.Curve(context.Background(), "bisque")
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	if c.TotalMinutes != 390 || c.MinTempC != 20 || c.MaxTempC != 950 {
		t.Fatalf("curve = %+v", c)
	}

	cmds, err := svc.Commands(context.Background(), "bisque", 3)
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	if len(cmds) != 3 || cmds[0].Temperature != "PV=C3, SV=20" || cmds[2].Time != "PV=t5, SV=300" {
		t.Fatalf("commands = %+v", cmds)
	}
	if _, err := svc.Commands(context.Background(), "bisque", 100); err == nil {
		t.Fatalf("expected program range error")
	}
}
