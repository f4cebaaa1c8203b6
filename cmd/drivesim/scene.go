package main

import (
	"Tankette/internal/behaviour"
	"Tankette/internal/config"
	"Tankette/internal/engine"
	"Tankette/internal/input"
	"Tankette/internal/logger"
	"Tankette/internal/sim"
	"Tankette/internal/turret"
	"Tankette/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var chaseOffset = mgl32.Vec3{0, 4, 9}

// scene is one vehicle with a turret on scripted input, hosted in an engine.
type scene struct {
	engine *engine.Engine
	world  *sim.World
	hull   *behaviour.GameObject
	player *input.Player
	drive  *vehicle.Component
	turret *turret.Component
}

// chaseAim keeps a chase camera behind the hull, looking at a fixed world
// point, and aims through the centre of its screen.
type chaseAim struct {
	hull   *behaviour.GameObject
	camera *turret.Camera
	offset mgl32.Vec3
	point  mgl32.Vec3
}

func (a *chaseAim) AimRay() (turret.Ray, bool) {
	t := a.hull.Transform
	a.camera.Follow(t.Position, t.Rotation, a.offset)
	if a.camera.Position.ApproxEqual(a.point) {
		return turret.Ray{}, false
	}
	a.camera.LookAt(a.point)
	return a.camera.AimRay()
}

func newScene(s config.Settings) *scene {
	world, wheels := sim.NewTrackedVehicle(s.Sim)

	hull := behaviour.NewGameObject("Hull")
	hull.Tag = "Player"
	world.Follow(hull.Transform)
	for i := range wheels {
		wheels[i].Mesh = behaviour.NewTransform()
	}

	axes := input.NewAxes()
	axes.Define(s.Vehicle.ForwardAxis, s.Axes)
	axes.Define(s.Vehicle.TurnAxis, s.Axes)
	player := input.NewPlayer(input.NewScript(s.Script), axes)

	controller := vehicle.NewController(s.Vehicle, world.Body, wheels)
	drive := vehicle.NewComponent(controller, axes)

	tur := turret.New(s.Turret)
	ground := turret.Scene{Targets: s.Targets, Ground: true, GroundLevel: world.Terrain.Base}
	camera := turret.NewCamera(1280, 720)
	aim := turret.NewComponent(tur, &chaseAim{hull: hull, camera: camera, offset: chaseOffset, point: s.AimAt}, ground)
	aim.Ring = behaviour.NewTransform()
	aim.Gun = behaviour.NewTransform()

	// Input first so the controller reads this step's axes.
	hull.AddComponent(player)
	hull.AddComponent(drive)
	hull.AddComponent(aim)

	eng := engine.New(s.TickRate)
	eng.Behaviours.Components.RegisterGameObject(hull)
	eng.Behaviours.Add(world)

	sc := &scene{
		engine: eng,
		world:  world,
		hull:   hull,
		player: player,
		drive:  drive,
		turret: aim,
	}
	if s.TelemetryEvery > 0 {
		every := uint64(s.TelemetryEvery)
		eng.SetOnFixedStepCallback(func(step uint64, dt float32) {
			if step%every == 0 {
				sc.logTelemetry()
			}
		})
	}

	logger.Log.Info("Scene ready",
		zap.Int("wheels", len(wheels)),
		zap.String("mode", string(controller.Config().Mode)),
		zap.Int("axlePairs", len(controller.AxlePairs())),
		zap.Int("keyframes", len(s.Script)),
		zap.Int("targets", len(s.Targets)))
	return sc
}

func (sc *scene) logTelemetry() {
	cmd := sc.drive.LastCommands()
	body := sc.world.Body
	tur := sc.turret.Turret

	fields := []zap.Field{
		zap.Uint64("step", sc.engine.Steps()),
		zap.Duration("t", sc.engine.SimTime()),
		zap.Float32("speedKPH", cmd.SpeedKPH),
		zap.Float32("left", cmd.Ramped.Left),
		zap.Float32("right", cmd.Ramped.Right),
		zap.Float32("limiter", cmd.Limiter),
		zap.Bool("pivot", cmd.Pivot),
		zap.Float32("steer", cmd.SteerAngle),
		zap.Float32("x", body.Position.X()),
		zap.Float32("z", body.Position.Z()),
		zap.Float32("yaw", mgl32.RadToDeg(body.Yaw)),
		zap.Float32("turretYaw", tur.Yaw()),
		zap.Float32("elevation", tur.Elevation()),
	}
	if hit, ok := sc.turret.LastHit(); ok && hit.Target != "" {
		fields = append(fields, zap.String("aimingAt", hit.Target))
	}
	logger.Log.Info("Telemetry", fields...)

	for _, ar := range cmd.AntiRoll {
		if ar.Force != 0 {
			logger.Log.Debug("Anti-roll",
				zap.String("left", ar.Left),
				zap.String("right", ar.Right),
				zap.Float32("force", ar.Force))
		}
	}
}
