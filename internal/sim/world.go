package sim

import (
	"fmt"
	"math"

	"Tankette/internal/behaviour"
	"Tankette/internal/logger"
	"Tankette/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// World steps one Body and its Wheels over a Terrain. It runs as a behaviour
// system so each fixed step sees the commands the controller just wrote.
type World struct {
	Terrain *Terrain
	Body    *Body
	wheels  []*Wheel
	poses   []vehicle.MeshTransform
	steps   uint64
}

var _ behaviour.System = (*World)(nil)

func NewWorld(terrain *Terrain, body *Body) *World {
	if terrain == nil {
		terrain = Flat(0)
	}
	return &World{Terrain: terrain, Body: body}
}

// AddWheel mounts a wheel at a body-local offset.
func (w *World) AddWheel(name string, mount mgl32.Vec3, radius, suspension, mass float32) *Wheel {
	wh := &Wheel{
		Name:       name,
		Mount:      mount,
		radius:     radius,
		suspension: suspension,
		inertia:    0.5 * mass * radius * radius,
		body:       w.Body,
		terrain:    w.Terrain,
	}
	w.wheels = append(w.wheels, wh)
	return wh
}

func (w *World) Wheels() []*Wheel { return w.wheels }

// Follow makes t track the body pose after every step.
func (w *World) Follow(t vehicle.MeshTransform) {
	if t != nil {
		w.poses = append(w.poses, t)
	}
}

func (w *World) Steps() uint64 { return w.steps }

func (w *World) Start() {
	w.settle()
	for _, wh := range w.wheels {
		wh.probe()
	}
	w.syncPoses()
}

func (w *World) Update(dt float32) {}

// UpdateFixed applies wheel forces, integrates the body, then re-probes the
// ground so the next controller tick reads fresh contacts.
func (w *World) UpdateFixed(dt float32) {
	if dt <= 0 || w.Body == nil {
		return
	}

	share := float32(0)
	if n := len(w.wheels); n > 0 {
		share = w.Body.Mass / float32(n)
	}
	for _, wh := range w.wheels {
		wh.applyForces(dt, share)
	}

	w.Body.Integrate(dt)
	w.steerYaw()
	w.settle()

	for _, wh := range w.wheels {
		wh.probe()
		wh.roll(dt)
	}
	w.syncPoses()
	w.steps++
}

// steerYaw overrides the yaw rate with a bicycle model while steering wheels
// are turned, using the spread between steering and fixed axles as wheelbase.
func (w *World) steerYaw() {
	var steer float32
	var steered int
	var front, rear float32 = math.MaxFloat32, -math.MaxFloat32
	for _, wh := range w.wheels {
		if wh.steer != 0 && wh.grounded {
			steer += wh.steer
			steered++
		}
		front = min(front, wh.Mount.Z())
		rear = max(rear, wh.Mount.Z())
	}
	if steered == 0 {
		return
	}
	wheelbase := rear - front
	if wheelbase <= 0 {
		return
	}
	steer /= float32(steered)
	speed := w.Body.LinearVelocity.Dot(w.Body.Forward())
	// Positive steer is clockwise, which is negative yaw.
	w.Body.AngularVelocity = -speed * float32(math.Tan(float64(mgl32.DegToRad(steer)))) / wheelbase
}

// settle puts the body at ride height over the mean ground under its wheels.
func (w *World) settle() {
	if len(w.wheels) == 0 || w.Body == nil {
		return
	}
	rot := w.Body.Rotation()
	var sum float32
	for _, wh := range w.wheels {
		m := w.Body.Position.Add(rot.Rotate(wh.Mount))
		sum += w.Terrain.Height(m.X(), m.Z()) + wh.radius + 0.5*wh.suspension - wh.Mount.Y()
	}
	w.Body.Position[1] = sum / float32(len(w.wheels))
}

func (w *World) syncPoses() {
	if w.Body == nil {
		return
	}
	rot := w.Body.Rotation()
	for _, p := range w.poses {
		p.SetPositionAndRotation(w.Body.Position, rot)
	}
}

// NewTrackedVehicle builds a body with WheelsPerSide wheels on each side,
// evenly spaced front to back, and returns the controller's wheel list with
// all left wheels first. Every wheel drives; the first SteeredAxles axles steer.
func NewTrackedVehicle(cfg Config) (*World, []vehicle.Wheel) {
	if cfg.WheelsPerSide < 1 {
		cfg.WheelsPerSide = 1
	}
	body := &Body{
		Mass:        cfg.Mass,
		YawInertia:  cfg.YawInertia(),
		LinearDrag:  cfg.LinearDrag,
		AngularDrag: cfg.AngularDrag,
		LateralGrip: cfg.LateralGrip,
		Position:    cfg.StartPosition,
		Yaw:         mgl32.DegToRad(cfg.StartYaw),
	}

	terrain := Flat(0)
	if cfg.TerrainAmplitude != 0 {
		terrain = NewTerrain(cfg.Seed, cfg.TerrainAmplitude, cfg.TerrainScale)
	}
	world := NewWorld(terrain, body)

	n := cfg.WheelsPerSide
	wheels := make([]vehicle.Wheel, 0, 2*n)
	for _, side := range []vehicle.Side{vehicle.Left, vehicle.Right} {
		x, prefix := -cfg.Width/2, "L"
		if side == vehicle.Right {
			x, prefix = cfg.Width/2, "R"
		}
		for i := 0; i < n; i++ {
			var z float32
			if n > 1 {
				z = -cfg.Length/2 + cfg.Length*float32(i)/float32(n-1)
			}
			name := fmt.Sprintf("%s%d", prefix, i)
			wh := world.AddWheel(name, mgl32.Vec3{x, 0, z}, cfg.WheelRadius, cfg.Suspension, cfg.WheelMass)
			wheels = append(wheels, vehicle.Wheel{
				Name:     name,
				Side:     side,
				Drives:   true,
				Steers:   i < cfg.SteeredAxles,
				Collider: wh,
			})
		}
	}

	logger.Log.Debug("Built tracked vehicle",
		zap.Int("wheels", len(wheels)),
		zap.Float32("mass", cfg.Mass),
		zap.Bool("terrain", cfg.TerrainAmplitude != 0))
	return world, wheels
}
