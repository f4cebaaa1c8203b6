package vehicle

import (
	"github.com/go-gl/mathgl/mgl32"
)

type appliedForce struct {
	Force    mgl32.Vec3
	Position mgl32.Vec3
}

type fakeBody struct {
	velocity mgl32.Vec3
	forces   []appliedForce
	torques  []mgl32.Vec3
}

func (b *fakeBody) Velocity() mgl32.Vec3 { return b.velocity }

func (b *fakeBody) AddForceAtPosition(force, position mgl32.Vec3) {
	b.forces = append(b.forces, appliedForce{Force: force, Position: position})
}

func (b *fakeBody) AddRelativeTorque(torque mgl32.Vec3) {
	b.torques = append(b.torques, torque)
}

type fakeWheel struct {
	rpm        float32
	radius     float32
	suspension float32
	position   mgl32.Vec3
	rotation   mgl32.Quat
	hit        *WheelHit

	motor float32
	brake float32
	steer float32
	sets  int
}

func newFakeWheel(position mgl32.Vec3) *fakeWheel {
	return &fakeWheel{
		radius:     0.5,
		suspension: 1,
		position:   position,
		rotation:   mgl32.QuatIdent(),
	}
}

// withTravel places the ground contact so the wheel reports the given travel.
func (w *fakeWheel) withTravel(travel float32) *fakeWheel {
	down := w.radius + travel*w.suspension
	w.hit = &WheelHit{
		Point:  w.position.Add(w.rotation.Rotate(mgl32.Vec3{0, -down, 0})),
		Normal: mgl32.Vec3{0, 1, 0},
	}
	return w
}

func (w *fakeWheel) SetMotorTorque(torque float32) { w.motor = torque; w.sets++ }
func (w *fakeWheel) SetBrakeTorque(torque float32) { w.brake = torque }
func (w *fakeWheel) SetSteerAngle(degrees float32) { w.steer = degrees }
func (w *fakeWheel) RPM() float32                  { return w.rpm }
func (w *fakeWheel) Radius() float32               { return w.radius }
func (w *fakeWheel) SuspensionDistance() float32   { return w.suspension }

func (w *fakeWheel) GroundHit() (WheelHit, bool) {
	if w.hit == nil {
		return WheelHit{}, false
	}
	return *w.hit, true
}

func (w *fakeWheel) Frame() (mgl32.Vec3, mgl32.Quat) {
	return w.position, w.rotation
}

func (w *fakeWheel) WorldPose() (mgl32.Vec3, mgl32.Quat) {
	return w.position.Add(mgl32.Vec3{0, -0.2, 0}), w.rotation
}

type fakeMesh struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	synced   int
}

func (m *fakeMesh) SetPositionAndRotation(position mgl32.Vec3, rotation mgl32.Quat) {
	m.position = position
	m.rotation = rotation
	m.synced++
}

type fakeInput struct {
	raw      map[string]float32
	smoothed map[string]float32
}

func (f fakeInput) Axis(name string) float32    { return f.smoothed[name] }
func (f fakeInput) AxisRaw(name string) float32 { return f.raw[name] }

// tank builds a four-wheel skid-steer rig: two axles, both sides driven.
func tank(cfg Config) (*Controller, *fakeBody, []*fakeWheel) {
	body := &fakeBody{}
	fl := newFakeWheel(mgl32.Vec3{-1, 0, -1})
	rl := newFakeWheel(mgl32.Vec3{-1, 0, 1})
	fr := newFakeWheel(mgl32.Vec3{1, 0, -1})
	rr := newFakeWheel(mgl32.Vec3{1, 0, 1})
	wheels := []Wheel{
		{Name: "FL", Side: Left, Drives: true, Steers: true, Collider: fl},
		{Name: "RL", Side: Left, Drives: true, Collider: rl},
		{Name: "FR", Side: Right, Drives: true, Steers: true, Collider: fr},
		{Name: "RR", Side: Right, Drives: true, Collider: rr},
	}
	return NewController(cfg, body, wheels), body, []*fakeWheel{fl, rl, fr, rr}
}
