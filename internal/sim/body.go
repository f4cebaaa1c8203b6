package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
	localRight   = mgl32.Vec3{1, 0, 0}
)

// Body is a planar rigid body: it translates in XZ and yaws about +Y. Its
// height is placed by the world from the ground under the wheels. Vertical
// force components do not move it but are reported as a body-local moment.
type Body struct {
	Mass        float32
	YawInertia  float32
	LinearDrag  float32 // per second
	AngularDrag float32 // per second
	LateralGrip float32 // per second decay of sideways velocity

	Position        mgl32.Vec3
	Yaw             float32 // radians, counter-clockwise seen from above
	LinearVelocity  mgl32.Vec3
	AngularVelocity float32 // radians per second about +Y

	force      mgl32.Vec3
	torque     float32
	angAccel   float32
	moment     mgl32.Vec3
	lastMoment mgl32.Vec3
}

func (b *Body) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(b.Yaw, worldUp)
}

func (b *Body) Forward() mgl32.Vec3 {
	return b.Rotation().Rotate(localForward)
}

func (b *Body) Velocity() mgl32.Vec3 {
	return b.LinearVelocity
}

// PointVelocity is the velocity of a world point rigidly attached to the body.
func (b *Body) PointVelocity(p mgl32.Vec3) mgl32.Vec3 {
	r := p.Sub(b.Position)
	return b.LinearVelocity.Add(mgl32.Vec3{0, b.AngularVelocity, 0}.Cross(r))
}

func (b *Body) AddForce(f mgl32.Vec3) {
	b.force = b.force.Add(mgl32.Vec3{f.X(), 0, f.Z()})
}

// AddForceAtPosition accumulates the planar force and its yaw torque. The
// remaining moment is kept for telemetry.
func (b *Body) AddForceAtPosition(f, p mgl32.Vec3) {
	b.AddForce(f)
	m := p.Sub(b.Position).Cross(f)
	b.torque += m.Y()
	b.moment = b.moment.Add(b.Rotation().Inverse().Rotate(mgl32.Vec3{m.X(), 0, m.Z()}))
}

// AddRelativeTorque adds a body-local angular acceleration, ignoring mass.
func (b *Body) AddRelativeTorque(t mgl32.Vec3) {
	b.angAccel += t.Y()
}

// Moment is the body-local roll and pitch moment accumulated during the last step.
func (b *Body) Moment() mgl32.Vec3 {
	return b.lastMoment
}

// Integrate advances the body by dt with semi-implicit Euler and clears the accumulators.
func (b *Body) Integrate(dt float32) {
	if dt <= 0 {
		return
	}
	if b.Mass > 0 {
		b.LinearVelocity = b.LinearVelocity.Add(b.force.Mul(dt / b.Mass))
	}
	if b.LateralGrip > 0 {
		right := b.Rotation().Rotate(localRight)
		lat := b.LinearVelocity.Dot(right)
		keep := float32(math.Exp(float64(-b.LateralGrip * dt)))
		b.LinearVelocity = b.LinearVelocity.Sub(right.Mul(lat * (1 - keep)))
	}
	b.LinearVelocity = b.LinearVelocity.Mul(1 / (1 + b.LinearDrag*dt))
	b.LinearVelocity[1] = 0

	alpha := b.angAccel
	if b.YawInertia > 0 {
		alpha += b.torque / b.YawInertia
	}
	b.AngularVelocity += alpha * dt
	b.AngularVelocity /= 1 + b.AngularDrag*dt

	b.Position = b.Position.Add(b.LinearVelocity.Mul(dt))
	b.Yaw = wrapRadians(b.Yaw + b.AngularVelocity*dt)

	b.lastMoment = b.moment
	b.force = mgl32.Vec3{}
	b.torque = 0
	b.angAccel = 0
	b.moment = mgl32.Vec3{}
}

func wrapRadians(a float32) float32 {
	a = float32(math.Mod(float64(a), 2*math.Pi))
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
