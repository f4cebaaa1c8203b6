package vehicle

import (
	"Tankette/internal/behaviour"
	"Tankette/internal/input"
)

// Component hosts a Controller in the behaviour lifecycle. Each fixed step it
// samples the configured axes (raw or smoothed) and ticks the controller.
type Component struct {
	behaviour.BaseComponent
	Controller *Controller
	Input      input.Source

	last  Commands
	ticks uint64
}

func NewComponent(controller *Controller, source input.Source) *Component {
	return &Component{Controller: controller, Input: source}
}

func (c *Component) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeVehicle
}

func (c *Component) GetTypeName() string {
	return "DriveController"
}

// Sample reads both axes from the input surface. No source reads as zero input.
func (c *Component) Sample() Inputs {
	if c.Input == nil || c.Controller == nil {
		return Inputs{}
	}
	cfg := c.Controller.Config()
	if cfg.RawInput {
		return Inputs{Forward: c.Input.AxisRaw(cfg.ForwardAxis), Turn: c.Input.AxisRaw(cfg.TurnAxis)}
	}
	return Inputs{Forward: c.Input.Axis(cfg.ForwardAxis), Turn: c.Input.Axis(cfg.TurnAxis)}
}

func (c *Component) FixedUpdate(dt float32) {
	if c.Controller == nil {
		return
	}
	c.last = c.Controller.Tick(dt, c.Sample())
	c.ticks++
}

// LastCommands returns the outcome of the most recent fixed step.
func (c *Component) LastCommands() Commands {
	return c.last
}

// Ticks counts fixed steps run so far.
func (c *Component) Ticks() uint64 {
	return c.ticks
}
