package runner

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bouncing-balls/internal/logger"
	"bouncing-balls/internal/model"
	"bouncing-balls/internal/physics"
)

func newSim(t *testing.T) model.Model {
	t.Helper()
	opts := physics.DefaultOptions()
	opts.Count = 3
	opts.Seed = 21
	m, err := model.New(model.KindPhysics, opts)
	if err != nil {
		t.Fatalf("model.New: %v", err)
	}
	return m
}

type failingModel struct {
	calls atomic.Int32
}

var errBroken = errors.New("broken")

func (f *failingModel) Advance(float64) error {
	if f.calls.Add(1) > 3 {
		return errBroken
	}
	return nil
}

func (f *failingModel) Snapshot() []physics.Circle { return nil }

func TestSteps(t *testing.T) {
	var b strings.Builder
	if err := Steps(newSim(t), 50, 0.01, &b); err != nil {
		t.Fatalf("Steps: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "after 50 steps of 0.01s") || !strings.Contains(out, "kinetic energy") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSteps_Errors(t *testing.T) {
	var b strings.Builder
	if err := Steps(newSim(t), 1, 0, &b); !errors.Is(err, physics.ErrInvalidStep) {
		t.Errorf("Steps(dt=0) error = %v, want ErrInvalidStep", err)
	}
	if err := Steps(newSim(t), -1, 0.1, &b); err == nil {
		t.Error("Steps(n=-1) error = nil")
	}
	if b.Len() != 0 {
		t.Errorf("output written on error: %q", b.String())
	}
}

func TestSteps_DummyHasNoEnergy(t *testing.T) {
	d, err := model.NewDummy(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := Steps(d, 10, 0.1, &b); err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if strings.Contains(b.String(), "kinetic energy") {
		t.Errorf("dummy output reports energy:\n%s", b.String())
	}
}

func TestRealtime_StopsAfterDuration(t *testing.T) {
	var b strings.Builder
	log := logger.New("")
	opts := Options{Duration: 60 * time.Millisecond, Tick: time.Millisecond, Every: 20 * time.Millisecond}
	if err := Realtime(context.Background(), newSim(t), opts, &b, log); err != nil {
		t.Fatalf("Realtime: %v", err)
	}
	if n := strings.Count(b.String(), "t="); n < 1 {
		t.Errorf("no snapshots written:\n%s", b.String())
	}
	if tail := log.Tail(1); len(tail) != 1 || !strings.Contains(tail[0], "stopped after") {
		t.Errorf("log tail = %q", tail)
	}
}

func TestRealtime_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var b strings.Builder
	if err := Realtime(ctx, newSim(t), Options{}, &b, nil); err != nil {
		t.Fatalf("Realtime: %v", err)
	}
	if !strings.Contains(b.String(), "t=") {
		t.Errorf("final snapshot missing:\n%s", b.String())
	}
}

func TestRealtime_AdvanceErrorStopsRun(t *testing.T) {
	var b strings.Builder
	opts := Options{Tick: time.Millisecond, Every: time.Hour}
	done := make(chan error, 1)
	go func() {
		done <- Realtime(context.Background(), &failingModel{}, opts, &b, nil)
	}()
	select {
	case err := <-done:
		if !errors.Is(err, errBroken) {
			t.Errorf("Realtime error = %v, want errBroken", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Realtime did not stop after Advance failed")
	}
}
