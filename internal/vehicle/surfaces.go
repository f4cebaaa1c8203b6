package vehicle

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Body is the rigid body the wheels push against. It is owned by the physics
// step; the controller only reads velocity and adds forces.
type Body interface {
	Velocity() mgl32.Vec3
	AddForceAtPosition(force, position mgl32.Vec3)
	// AddRelativeTorque adds a body-local angular acceleration.
	AddRelativeTorque(torque mgl32.Vec3)
}

// WheelHit describes the ground contact of a wheel.
type WheelHit struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// WheelCollider is the per-wheel physics surface.
type WheelCollider interface {
	SetMotorTorque(torque float32)
	SetBrakeTorque(torque float32)
	SetSteerAngle(degrees float32)

	RPM() float32
	GroundHit() (WheelHit, bool)
	Radius() float32
	SuspensionDistance() float32

	// Frame is the collider's own mount transform in world space.
	Frame() (mgl32.Vec3, mgl32.Quat)
	// WorldPose is where the wheel centre actually is, including suspension travel and spin.
	WorldPose() (mgl32.Vec3, mgl32.Quat)
}

// MeshTransform is the visual proxy of a wheel.
type MeshTransform interface {
	SetPositionAndRotation(position mgl32.Vec3, rotation mgl32.Quat)
}
