package vehicle

import (
	"Tankette/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Inputs are the two axis samples read once per fixed step, nominally in [-1, 1].
// Positive Turn is clockwise seen from above.
type Inputs struct {
	Forward float32
	Turn    float32
}

// SidePair holds one value per side.
type SidePair struct {
	Left  float32
	Right float32
}

// WheelCommand is what a wheel received during a tick.
type WheelCommand struct {
	Name  string
	Side  Side
	Motor float32
	Brake float32
	Steer float32
}

// AntiRollForce is the force pair applied across one axle.
type AntiRollForce struct {
	Left        string
	Right       string
	TravelLeft  float32
	TravelRight float32
	Force       float32
}

// Commands is the outcome of one tick.
type Commands struct {
	Forward    float32 // after deadzone
	Turn       float32 // after deadzone and speed dampening
	SpeedKPH   float32
	Limiter    float32
	Target     SidePair
	Ramped     SidePair
	Pivot      bool
	SteerAngle float32
	Wheels     []WheelCommand
	AntiRoll   []AntiRollForce
}

// State is the part of the controller that persists across ticks.
type State struct {
	Ramp       SidePair
	SteerAngle float32
}

// Controller turns forward/turn axes into per-wheel motor, brake and steer
// commands once per fixed step. It is not safe for concurrent use: it runs
// interleaved with the physics step on a single thread.
type Controller struct {
	cfg      Config
	body     Body
	wheels   []Wheel
	pairs    []AxlePair
	antiRoll bool
	state    State
}

// NewController sanitizes cfg and binds the controller to a body and a fixed
// wheel list. Wheels without a collider or with an unknown side are kept in
// place (so axle pairing is unaffected) but skipped by every step.
func NewController(cfg Config, body Body, wheels []Wheel) *Controller {
	c := &Controller{
		cfg:    cfg.Sanitize(),
		body:   body,
		wheels: append([]Wheel(nil), wheels...),
	}

	for _, w := range c.wheels {
		if w.Collider == nil {
			logger.Log.Warn("Wheel has no collider, it will be ignored", zap.String("wheel", w.Name))
		}
		if !w.Side.valid() {
			logger.Log.Warn("Wheel has an unknown side, it will be ignored",
				zap.String("wheel", w.Name), zap.Stringer("side", w.Side))
		}
	}

	c.pairs, c.antiRoll = pairAxles(c.wheels)
	if !c.antiRoll {
		logger.Log.Warn("Left and right wheel counts differ, anti-roll disabled",
			zap.Int("wheels", len(c.wheels)))
	}
	return c
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Wheels() []Wheel { return c.wheels }

func (c *Controller) AxlePairs() []AxlePair { return c.pairs }

// State returns the persisted ramp and steer values.
func (c *Controller) State() State { return c.state }

// Restore overwrites the persisted state, clamped into range.
func (c *Controller) Restore(s State) {
	c.state = State{
		Ramp:       SidePair{Left: clampUnit(s.Ramp.Left), Right: clampUnit(s.Ramp.Right)},
		SteerAngle: clamp(s.SteerAngle, -c.cfg.MaxSteerAngle, c.cfg.MaxSteerAngle),
	}
}

// SpeedKPH is the body's linear speed in km/h, 0 without a body.
func (c *Controller) SpeedKPH() float32 {
	if c.body == nil {
		return 0
	}
	return orZero(c.body.Velocity().Len() * kphPerMps)
}

// Tick runs one fixed step: sample, mix, ramp, per-wheel torque and brake,
// anti-roll, mesh sync, in that order. With no wheels it does nothing.
func (c *Controller) Tick(dt float32, in Inputs) Commands {
	if len(c.wheels) == 0 {
		return Commands{}
	}
	if !(dt > 0) {
		dt = 0
	}

	cmd := c.plan(dt, in)
	c.applyWheels(&cmd)
	c.applyYawAssist(cmd.Turn)
	if c.antiRoll {
		cmd.AntiRoll = c.applyAntiRoll()
	}
	c.syncMeshes()
	return cmd
}

// plan computes targets and advances the ramp and steer state.
func (c *Controller) plan(dt float32, in Inputs) Commands {
	cfg := c.cfg

	fwd := clampUnit(applyDeadzone(in.Forward, cfg.Deadzone))
	turn := clampUnit(applyDeadzone(in.Turn, cfg.Deadzone))

	speed := c.SpeedKPH()
	damped := turn * TurnScale(speed, cfg.MaxSpeedKPH, cfg.TurnDampening)

	cmd := Commands{
		Forward:  fwd,
		Turn:     damped,
		SpeedKPH: speed,
		Limiter:  SpeedLimiter(speed, cfg.MaxSpeedKPH),
	}

	switch cfg.Mode {
	case ModeSteered:
		cmd.Target = SidePair{Left: fwd, Right: fwd}
		c.state.SteerAngle = moveTowards(c.state.SteerAngle, damped*cfg.MaxSteerAngle, cfg.SteerSpeed*dt)
	default:
		cmd.Target = Mix(fwd, damped)
		if abs(fwd) <= cfg.CommandEpsilon && turn != 0 && speed < cfg.PivotSpeedKPH {
			cmd.Target = SidePair{Left: clampUnit(turn), Right: clampUnit(-turn)}
			cmd.Pivot = true
		}
	}

	step := cfg.TorqueRamp * dt
	c.state.Ramp.Left = moveTowards(c.state.Ramp.Left, cmd.Target.Left, step)
	c.state.Ramp.Right = moveTowards(c.state.Ramp.Right, cmd.Target.Right, step)

	cmd.Ramped = c.state.Ramp
	cmd.SteerAngle = c.state.SteerAngle
	return cmd
}

// Mix is the differential mix of forward and turn into left/right commands.
func Mix(forward, turn float32) SidePair {
	return SidePair{
		Left:  clampUnit(forward + turn),
		Right: clampUnit(forward - turn),
	}
}

func (c *Controller) applyWheels(cmd *Commands) {
	cmd.Wheels = make([]WheelCommand, 0, len(c.wheels))
	for i := range c.wheels {
		w := &c.wheels[i]
		if w.Collider == nil || !w.Side.valid() {
			continue
		}

		side := cmd.Ramped.Left
		if w.Side == Right {
			side = cmd.Ramped.Right
		}
		motor, brake := c.torqueFor(w, side, cmd.Limiter)
		w.Collider.SetMotorTorque(motor)
		w.Collider.SetBrakeTorque(brake)

		wc := WheelCommand{Name: w.Name, Side: w.Side, Motor: motor, Brake: brake}
		if w.Steers && c.cfg.Mode == ModeSteered {
			w.Collider.SetSteerAngle(cmd.SteerAngle)
			wc.Steer = cmd.SteerAngle
		}
		cmd.Wheels = append(cmd.Wheels, wc)
	}
}

// torqueFor returns motor and brake torque for one wheel given its side command.
// A wheel spinning against the commanded direction gets the bite brake so it
// reverses quickly.
func (c *Controller) torqueFor(w *Wheel, command, limiter float32) (motor, brake float32) {
	cfg := c.cfg
	if abs(command) < cfg.CommandEpsilon {
		return 0, cfg.HoldBrakeTorque
	}

	if w.Drives {
		motor = command * cfg.MaxMotorTorque * limiter
	}

	rpm := w.Collider.RPM()
	if abs(rpm) > cfg.BiteRPM && sign(rpm) != sign(command) {
		brake = cfg.BrakeTorque
	}
	return motor, brake
}

func (c *Controller) applyYawAssist(turn float32) {
	if c.body == nil || c.cfg.YawAssist == 0 || turn == 0 {
		return
	}
	// Right-handed, +Y up: clockwise from above is negative yaw.
	c.body.AddRelativeTorque(mgl32.Vec3{0, -turn * c.cfg.YawAssist, 0})
}

func (c *Controller) syncMeshes() {
	for i := range c.wheels {
		w := &c.wheels[i]
		if w.Collider == nil || w.Mesh == nil || !w.Side.valid() {
			continue
		}
		pos, rot := w.Collider.WorldPose()
		w.Mesh.SetPositionAndRotation(pos, rot)
	}
}
