package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	behaviour "Tankette/internal/behaviour"
	"Tankette/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultTickRate         = 50 // Hz
	DefaultMaxStepsPerFrame = 5
)

// Engine is a headless fixed-timestep loop. Every frame it runs as many fixed
// steps as the accumulated time allows, then one variable Update.
type Engine struct {
	Behaviours       *behaviour.BehaviourManager
	MaxStepsPerFrame int

	fixedStep   float64
	accumulator float64
	steps       uint64
	frames      uint64
	dropped     uint64

	onFixedStep func(step uint64, dt float32)
	onFrame     func(dt float32)
}

// New creates an engine ticking at tickRate Hz. A non-positive rate falls back to DefaultTickRate.
func New(tickRate float32) *Engine {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Engine{
		Behaviours:       behaviour.NewBehaviourManager(),
		MaxStepsPerFrame: DefaultMaxStepsPerFrame,
		fixedStep:        float64(float32(1 / tickRate)),
	}
}

// FixedStep is the fixed timestep in seconds.
func (e *Engine) FixedStep() float32 { return float32(e.fixedStep) }

func (e *Engine) Steps() uint64 { return e.steps }

func (e *Engine) Frames() uint64 { return e.frames }

// Dropped counts fixed steps skipped because a frame fell too far behind.
func (e *Engine) Dropped() uint64 { return e.dropped }

// SimTime is the simulated time covered by the fixed steps so far.
func (e *Engine) SimTime() time.Duration {
	return time.Duration(float64(e.steps) * e.fixedStep * float64(time.Second))
}

// SetOnFixedStepCallback sets a callback run after every fixed step (e.g. telemetry).
func (e *Engine) SetOnFixedStepCallback(callback func(step uint64, dt float32)) {
	e.onFixedStep = callback
}

// SetOnFrameCallback sets a callback run at the end of every frame.
func (e *Engine) SetOnFrameCallback(callback func(dt float32)) {
	e.onFrame = callback
}

// Step advances one frame of frameDt seconds and returns the number of fixed steps run.
func (e *Engine) Step(frameDt float32) int {
	if frameDt < 0 {
		frameDt = 0
	}
	e.accumulator += float64(frameDt)

	n := 0
	dt := float32(e.fixedStep)
	for e.accumulator >= e.fixedStep {
		if e.MaxStepsPerFrame > 0 && n >= e.MaxStepsPerFrame {
			skipped := uint64(e.accumulator / e.fixedStep)
			e.dropped += skipped
			e.accumulator = math.Mod(e.accumulator, e.fixedStep)
			logger.Log.Debug("Frame fell behind, dropping fixed steps",
				zap.Uint64("dropped", skipped),
				zap.Float32("frameDt", frameDt))
			break
		}
		e.Behaviours.UpdateAllFixed(dt)
		e.accumulator -= e.fixedStep
		e.steps++
		n++
		if e.onFixedStep != nil {
			e.onFixedStep(e.steps, dt)
		}
	}

	e.Behaviours.UpdateAll(frameDt)
	e.frames++
	if e.onFrame != nil {
		e.onFrame(frameDt)
	}
	return n
}

// RunFor steps frames of frameDt until the simulated time reaches d.
func (e *Engine) RunFor(d time.Duration, frameDt float32) error {
	if frameDt <= 0 {
		return fmt.Errorf("frame delta must be positive, got %v", frameDt)
	}
	target := uint64(math.Round(d.Seconds() / e.fixedStep))
	logger.Log.Info("Running headless",
		zap.Duration("duration", d),
		zap.Uint64("steps", target),
		zap.Float32("frameDt", frameDt))

	for e.steps < target {
		e.Step(frameDt)
	}

	logger.Log.Info("Run finished",
		zap.Uint64("steps", e.steps),
		zap.Uint64("frames", e.frames),
		zap.Uint64("dropped", e.dropped))
	return nil
}

// RunRealtime steps the engine against the wall clock at frameRate Hz until ctx is done.
func (e *Engine) RunRealtime(ctx context.Context, frameRate float32) error {
	if frameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %v", frameRate)
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / float64(frameRate)))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Realtime run stopped", zap.Uint64("steps", e.steps))
			return nil
		case now := <-ticker.C:
			e.Step(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}
