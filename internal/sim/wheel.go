package sim

import (
	"math"

	"Tankette/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	radPerSecToRPM = 60 / (2 * math.Pi)
	airSpinDecay   = 0.5 // per second, bearing drag on a free wheel
)

// Wheel is a raycast suspension wheel mounted on a Body. Contact is probed
// straight down from the mount into the terrain.
type Wheel struct {
	Name       string
	Mount      mgl32.Vec3 // body-local
	radius     float32
	suspension float32
	inertia    float32

	body    *Body
	terrain *Terrain

	motor float32
	brake float32
	steer float32 // degrees, positive turns clockwise seen from above

	omega    float32 // rad/s, positive rolls forward
	spin     float32 // radians
	travel   float32
	grounded bool
	hit      vehicle.WheelHit
}

var _ vehicle.WheelCollider = (*Wheel)(nil)

func (w *Wheel) SetMotorTorque(torque float32) { w.motor = torque }

func (w *Wheel) SetBrakeTorque(torque float32) {
	if torque < 0 {
		torque = 0
	}
	w.brake = torque
}

func (w *Wheel) SetSteerAngle(degrees float32) { w.steer = degrees }

func (w *Wheel) MotorTorque() float32 { return w.motor }

func (w *Wheel) BrakeTorque() float32 { return w.brake }

func (w *Wheel) SteerAngle() float32 { return w.steer }

func (w *Wheel) RPM() float32 { return w.omega * radPerSecToRPM }

func (w *Wheel) Radius() float32 { return w.radius }

func (w *Wheel) SuspensionDistance() float32 { return w.suspension }

func (w *Wheel) GroundHit() (vehicle.WheelHit, bool) {
	return w.hit, w.grounded
}

// Travel is the suspension extension from the last probe, 0 compressed and 1 fully extended.
func (w *Wheel) Travel() float32 { return w.travel }

func (w *Wheel) Frame() (mgl32.Vec3, mgl32.Quat) {
	rot := w.body.Rotation()
	return w.body.Position.Add(rot.Rotate(w.Mount)), rot
}

// WorldPose places the wheel centre down the suspension and turns it by steer and spin.
func (w *Wheel) WorldPose() (mgl32.Vec3, mgl32.Quat) {
	pos, rot := w.Frame()
	centre := pos.Sub(rot.Rotate(worldUp).Mul(clamp01(w.travel) * w.suspension))
	spun := rot.Mul(w.steerRotation()).Mul(mgl32.QuatRotate(-w.spin, localRight))
	return centre, spun.Normalize()
}

func (w *Wheel) steerRotation() mgl32.Quat {
	return mgl32.QuatRotate(-mgl32.DegToRad(w.steer), worldUp)
}

// heading is the world rolling direction of the wheel.
func (w *Wheel) heading() mgl32.Vec3 {
	return w.body.Rotation().Mul(w.steerRotation()).Rotate(localForward)
}

// probe refreshes ground contact and travel from the current body pose.
func (w *Wheel) probe() {
	mount, rot := w.Frame()
	ground := w.terrain.Height(mount.X(), mount.Z())
	drop := mount.Y() - ground

	w.grounded = drop <= w.radius+w.suspension
	if w.suspension > 0 {
		w.travel = (drop - w.radius) / w.suspension
	} else {
		w.travel = 1
	}
	if !w.grounded {
		w.travel = 1
		w.hit = vehicle.WheelHit{}
		return
	}
	w.hit = vehicle.WheelHit{
		Point:  mount.Sub(rot.Rotate(worldUp).Mul(drop)),
		Normal: w.terrain.Normal(mount.X(), mount.Z()),
	}
}

// applyForces pushes the body at the contact patch. share is the body mass
// carried by this wheel, used to cap the brake so it stops but never reverses.
func (w *Wheel) applyForces(dt, share float32) {
	if !w.grounded || w.radius <= 0 {
		return
	}
	fwd := w.heading()
	rolling := w.body.PointVelocity(w.hit.Point).Dot(fwd)

	drive := w.motor / w.radius
	if w.brake > 0 && rolling != 0 && dt > 0 {
		stop := abs(rolling) * share / dt
		brake := w.brake / w.radius
		if brake > stop {
			brake = stop
		}
		if rolling > 0 {
			drive -= brake
		} else {
			drive += brake
		}
	}
	if drive != 0 {
		w.body.AddForceAtPosition(fwd.Mul(drive), w.hit.Point)
	}
}

// roll updates the wheel spin after the body moved. A grounded wheel rolls
// without slip; a free wheel spins up from its own torques.
func (w *Wheel) roll(dt float32) {
	if w.grounded && w.radius > 0 {
		w.omega = w.body.PointVelocity(w.hit.Point).Dot(w.heading()) / w.radius
	} else if w.inertia > 0 {
		w.omega += w.motor / w.inertia * dt
		stop := abs(w.omega)
		brake := w.brake / w.inertia * dt
		if brake > stop {
			brake = stop
		}
		if w.omega > 0 {
			w.omega -= brake
		} else {
			w.omega += brake
		}
		w.omega /= 1 + airSpinDecay*dt
	}
	w.spin = wrapRadians(w.spin + w.omega*dt)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
