package vehicle

import (
	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// SuspensionTravel reports how far a wheel's suspension is extended, 0 fully
// compressed and 1 fully extended. The contact point is measured along the
// collider's own up axis, relative to its mount frame. A wheel off the ground
// reports full extension and grounded=false.
func SuspensionTravel(w WheelCollider) (travel float32, grounded bool) {
	hit, ok := w.GroundHit()
	if !ok {
		return 1, false
	}
	dist := w.SuspensionDistance()
	if dist <= 0 {
		return 1, true
	}

	pos, rot := w.Frame()
	local := rot.Inverse().Rotate(hit.Point.Sub(pos))
	return clamp01((-local.Y() - w.Radius()) / dist), true
}

// AntiRoll returns the anti-roll bar force for an axle: positive when the left
// side is more extended than the right.
func AntiRoll(travelLeft, travelRight, stiffness float32) float32 {
	return (travelLeft - travelRight) * stiffness
}

// applyAntiRoll pushes each grounded wheel of every axle along its own up axis:
// the left wheel by -force, the right by +force.
func (c *Controller) applyAntiRoll() []AntiRollForce {
	if c.body == nil || len(c.pairs) == 0 {
		return nil
	}

	out := make([]AntiRollForce, 0, len(c.pairs))
	for _, p := range c.pairs {
		l, r := &c.wheels[p.Left], &c.wheels[p.Right]
		if l.Collider == nil || r.Collider == nil {
			continue
		}

		tl, groundedL := SuspensionTravel(l.Collider)
		tr, groundedR := SuspensionTravel(r.Collider)
		force := AntiRoll(tl, tr, c.cfg.AntiRollStiffness)

		if groundedL {
			pos, rot := l.Collider.Frame()
			c.body.AddForceAtPosition(rot.Rotate(worldUp).Mul(-force), pos)
		}
		if groundedR {
			pos, rot := r.Collider.Frame()
			c.body.AddForceAtPosition(rot.Rotate(worldUp).Mul(force), pos)
		}

		out = append(out, AntiRollForce{
			Left:        l.Name,
			Right:       r.Name,
			TravelLeft:  tl,
			TravelRight: tr,
			Force:       force,
		})
	}
	return out
}
