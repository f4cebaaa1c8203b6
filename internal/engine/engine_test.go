package engine

import (
	"context"
	"testing"
	"time"

	behaviour "Tankette/internal/behaviour"
)

type countingSystem struct {
	starts int
	fixed  int
	frames int
	lastDt float32
}

func (s *countingSystem) Start()            { s.starts++ }
func (s *countingSystem) Update(dt float32) { s.frames++ }
func (s *countingSystem) UpdateFixed(dt float32) {
	s.fixed++
	s.lastDt = dt
}

func TestStepAccumulatesFixedSteps(t *testing.T) {
	e := New(50)
	sys := &countingSystem{}
	e.Behaviours.Add(sys)

	for i := 0; i < 60; i++ {
		e.Step(1.0 / 60)
	}

	if sys.fixed < 49 || sys.fixed > 50 {
		t.Errorf("Expected about 50 fixed steps in one second, got %d", sys.fixed)
	}
	if sys.frames != 60 {
		t.Errorf("Expected 60 frames, got %d", sys.frames)
	}
	if sys.starts != 1 {
		t.Errorf("Expected Start once, got %d", sys.starts)
	}
	if sys.lastDt != e.FixedStep() {
		t.Errorf("Fixed update got dt %v, want %v", sys.lastDt, e.FixedStep())
	}
}

func TestStepCatchUpIsCapped(t *testing.T) {
	e := New(50)
	e.MaxStepsPerFrame = 5
	sys := &countingSystem{}
	e.Behaviours.Add(sys)

	n := e.Step(1)
	if n != 5 {
		t.Errorf("Expected 5 steps after a long frame, got %d", n)
	}
	if e.Dropped() != 45 {
		t.Errorf("Expected 45 dropped steps, got %d", e.Dropped())
	}

	if n := e.Step(0.001); n != 0 {
		t.Errorf("Backlog should have been discarded, ran %d steps", n)
	}
}

func TestDefaultTickRate(t *testing.T) {
	e := New(0)
	if e.FixedStep() != 0.02 {
		t.Errorf("Expected 0.02s step, got %v", e.FixedStep())
	}
}

func TestRunForStopsAtDuration(t *testing.T) {
	e := New(50)
	var seen []uint64
	e.SetOnFixedStepCallback(func(step uint64, dt float32) {
		seen = append(seen, step)
	})
	frames := 0
	e.SetOnFrameCallback(func(dt float32) { frames++ })

	if err := e.RunFor(2*time.Second, 0.02); err != nil {
		t.Fatalf("RunFor failed: %v", err)
	}

	if e.Steps() != 100 {
		t.Errorf("Expected 100 steps, got %d", e.Steps())
	}
	if len(seen) != 100 || seen[99] != 100 {
		t.Errorf("Fixed step callback saw %d steps", len(seen))
	}
	if uint64(frames) != e.Frames() {
		t.Errorf("Frame callback ran %d times, engine counted %d", frames, e.Frames())
	}
	if e.SimTime() < 1990*time.Millisecond || e.SimTime() > 2010*time.Millisecond {
		t.Errorf("Unexpected sim time %v", e.SimTime())
	}
}

func TestRunForRejectsZeroFrame(t *testing.T) {
	if err := New(50).RunFor(time.Second, 0); err == nil {
		t.Error("Expected an error for a zero frame delta")
	}
}

type fixedComponent struct {
	behaviour.BaseComponent
	ticks int
}

func (c *fixedComponent) FixedUpdate(dt float32) { c.ticks++ }

func TestComponentsRunBeforeSystems(t *testing.T) {
	e := New(50)
	comp := &fixedComponent{}
	obj := behaviour.NewGameObject("Hull")
	obj.AddComponent(comp)
	e.Behaviours.Components.RegisterGameObject(obj)

	var ticksSeen []int
	e.Behaviours.Add(&probeSystem{comp: comp, seen: &ticksSeen})

	e.Step(0.04)

	if len(ticksSeen) != 2 || ticksSeen[0] != 1 || ticksSeen[1] != 2 {
		t.Errorf("System should see the component's tick of the same step, got %v", ticksSeen)
	}
}

type probeSystem struct {
	comp *fixedComponent
	seen *[]int
}

func (s *probeSystem) Start()            {}
func (s *probeSystem) Update(dt float32) {}
func (s *probeSystem) UpdateFixed(dt float32) {
	*s.seen = append(*s.seen, s.comp.ticks)
}

func TestRunRealtimeStopsOnCancel(t *testing.T) {
	e := New(50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := e.RunRealtime(ctx, 60); err != nil {
		t.Errorf("Expected nil on cancel, got %v", err)
	}
	if err := e.RunRealtime(context.Background(), 0); err == nil {
		t.Error("Expected an error for a zero frame rate")
	}
}
