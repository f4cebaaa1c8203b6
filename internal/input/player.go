package input

import (
	"time"

	"Tankette/internal/behaviour"
)

// Player replays a Script into Axes on the fixed step. Attach it before the
// components that read the axes so they see this step's values.
type Player struct {
	behaviour.BaseComponent
	Script  *Script
	Axes    *Axes
	elapsed time.Duration
}

func NewPlayer(script *Script, axes *Axes) *Player {
	return &Player{Script: script, Axes: axes}
}

func (p *Player) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeInput
}

func (p *Player) GetTypeName() string {
	return "ScriptedInput"
}

func (p *Player) FixedUpdate(dt float32) {
	if p.Axes == nil {
		return
	}
	if p.Script != nil {
		p.Script.Apply(p.elapsed, p.Axes)
	}
	p.Axes.Step(dt)
	p.elapsed += time.Duration(float64(dt) * float64(time.Second))
}

// Elapsed is the script time of the next step.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// Done reports whether every keyframe has been applied.
func (p *Player) Done() bool {
	return p.Script == nil || p.elapsed > p.Script.Duration()
}
