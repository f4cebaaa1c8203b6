package turret

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Config holds turret slew limits. Angles are in degrees, speeds in degrees per second.
type Config struct {
	YawSpeed     float32    `mapstructure:"yawSpeed" json:"yawSpeed"`
	PitchSpeed   float32    `mapstructure:"pitchSpeed" json:"pitchSpeed"`
	MinElevation float32    `mapstructure:"minElevation" json:"minElevation"`
	MaxElevation float32    `mapstructure:"maxElevation" json:"maxElevation"`
	Mount        mgl32.Vec3 `mapstructure:"mount" json:"mount"`         // turret ring, hull-local
	GunHeight    float32    `mapstructure:"gunHeight" json:"gunHeight"` // gun pivot above the ring
}

func DefaultConfig() Config {
	return Config{
		YawSpeed:     180,
		PitchSpeed:   90,
		MinElevation: -10,
		MaxElevation: 30,
		Mount:        mgl32.Vec3{0, 1, 0},
		GunHeight:    0.4,
	}
}

var (
	up      = mgl32.Vec3{0, 1, 0}
	right   = mgl32.Vec3{1, 0, 0}
	forward = mgl32.Vec3{0, 0, -1}
)

// Turret tracks an aim point with a yaw ring on the hull and an elevating gun.
// Yaw is hull-relative, counter-clockwise seen from above, 0 facing hull forward.
type Turret struct {
	cfg       Config
	yaw       float32
	elevation float32
}

func New(cfg Config) *Turret {
	if cfg.MinElevation > cfg.MaxElevation {
		cfg.MinElevation, cfg.MaxElevation = cfg.MaxElevation, cfg.MinElevation
	}
	return &Turret{cfg: cfg}
}

func (t *Turret) Config() Config { return t.cfg }

func (t *Turret) Yaw() float32 { return t.yaw }

func (t *Turret) Elevation() float32 { return t.elevation }

// Aim slews the turret toward a world-space point. The yaw follows the
// shortest arc in the hull plane; elevation is clamped to the gun limits.
// Each axis moves at most its speed times dt.
func (t *Turret) Aim(dt float32, hullPos mgl32.Vec3, hullRot mgl32.Quat, point mgl32.Vec3) {
	if dt <= 0 {
		return
	}
	inv := hullRot.Inverse()
	base := hullPos.Add(hullRot.Rotate(t.cfg.Mount))

	local := inv.Rotate(point.Sub(base))
	flat := mgl32.Vec3{local.X(), 0, local.Z()}
	if flat.Len() > 1e-5 {
		target := mgl32.RadToDeg(float32(math.Atan2(float64(-local.X()), float64(-local.Z()))))
		t.yaw = moveTowardsAngle(t.yaw, target, t.cfg.YawSpeed*dt)
	}

	gun := inv.Rotate(point.Sub(t.GunPosition(hullPos, hullRot)))
	horizontal := mgl32.Vec2{gun.X(), gun.Z()}.Len()
	desired := mgl32.RadToDeg(float32(math.Atan2(float64(gun.Y()), float64(horizontal))))
	desired = mgl32.Clamp(desired, t.cfg.MinElevation, t.cfg.MaxElevation)
	t.elevation = moveTowards(t.elevation, desired, t.cfg.PitchSpeed*dt)
}

// AimRay casts the ray into the scene and aims at the nearest hit. Without a
// hit the turret holds its pose.
func (t *Turret) AimRay(dt float32, hullPos mgl32.Vec3, hullRot mgl32.Quat, ray Ray, scene Scene) (Hit, bool) {
	hit, ok := scene.Raycast(ray)
	if ok {
		t.Aim(dt, hullPos, hullRot, hit.Point)
	}
	return hit, ok
}

// Rotation is the world rotation of the turret ring.
func (t *Turret) Rotation(hullRot mgl32.Quat) mgl32.Quat {
	return hullRot.Mul(mgl32.QuatRotate(mgl32.DegToRad(t.yaw), up)).Normalize()
}

// GunRotation is the world rotation of the gun, ring yaw then elevation.
func (t *Turret) GunRotation(hullRot mgl32.Quat) mgl32.Quat {
	return t.Rotation(hullRot).Mul(mgl32.QuatRotate(mgl32.DegToRad(t.elevation), right)).Normalize()
}

// GunPosition is the world position of the gun pivot.
func (t *Turret) GunPosition(hullPos mgl32.Vec3, hullRot mgl32.Quat) mgl32.Vec3 {
	return hullPos.Add(hullRot.Rotate(t.cfg.Mount.Add(mgl32.Vec3{0, t.cfg.GunHeight, 0})))
}

// Muzzle is the world direction the gun points.
func (t *Turret) Muzzle(hullRot mgl32.Quat) mgl32.Vec3 {
	return t.GunRotation(hullRot).Rotate(forward)
}

func moveTowards(current, target, maxDelta float32) float32 {
	d := target - current
	if d <= maxDelta && d >= -maxDelta {
		return target
	}
	if d > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// deltaAngle is the shortest signed difference target-current in (-180, 180].
func deltaAngle(current, target float32) float32 {
	d := float32(math.Mod(float64(target-current), 360))
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func wrapAngle(a float32) float32 {
	return deltaAngle(0, a)
}

func moveTowardsAngle(current, target, maxDelta float32) float32 {
	d := deltaAngle(current, target)
	if d <= maxDelta && d >= -maxDelta {
		return wrapAngle(target)
	}
	if d > 0 {
		return wrapAngle(current + maxDelta)
	}
	return wrapAngle(current - maxDelta)
}
