package turret

import (
	"Tankette/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// AimSource supplies the aim ray each frame, e.g. from a camera through the cursor.
type AimSource interface {
	AimRay() (Ray, bool)
}

// FixedAim always aims along the same ray.
type FixedAim struct {
	Ray Ray
}

func (f FixedAim) AimRay() (Ray, bool) { return f.Ray, true }

// AimThrough builds a ray from origin through point.
func AimThrough(origin, point mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: point.Sub(origin).Normalize()}
}

// Pose is a visual proxy for the turret ring or gun.
type Pose interface {
	SetPositionAndRotation(position mgl32.Vec3, rotation mgl32.Quat)
}

// Component hosts a Turret on a hull GameObject. It aims every frame, like the
// camera it follows, and mirrors the result onto optional ring and gun poses.
type Component struct {
	behaviour.BaseComponent
	Turret *Turret
	Source AimSource
	Scene  Scene
	Ring   Pose
	Gun    Pose

	lastHit Hit
	hasHit  bool
}

func NewComponent(t *Turret, source AimSource, scene Scene) *Component {
	return &Component{Turret: t, Source: source, Scene: scene}
}

func (c *Component) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeTurret
}

func (c *Component) GetTypeName() string {
	return "TurretAim"
}

func (c *Component) Update(dt float32) {
	obj := c.GetGameObject()
	if c.Turret == nil || c.Source == nil || obj == nil {
		return
	}
	ray, ok := c.Source.AimRay()
	if !ok {
		return
	}

	hullPos, hullRot := obj.Transform.Position, obj.Transform.Rotation
	c.lastHit, c.hasHit = c.Turret.AimRay(dt, hullPos, hullRot, ray, c.Scene)

	if c.Ring != nil {
		c.Ring.SetPositionAndRotation(hullPos.Add(hullRot.Rotate(c.Turret.cfg.Mount)), c.Turret.Rotation(hullRot))
	}
	if c.Gun != nil {
		c.Gun.SetPositionAndRotation(c.Turret.GunPosition(hullPos, hullRot), c.Turret.GunRotation(hullRot))
	}
}

// LastHit returns the most recent aim point, if any.
func (c *Component) LastHit() (Hit, bool) {
	return c.lastHit, c.hasHit
}
