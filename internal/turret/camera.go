package turret

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera used to turn a cursor position into an aim
// ray. Yaw and pitch are in degrees; yaw -90 looks down -Z.
type Camera struct {
	Position   mgl32.Vec3
	Front      mgl32.Vec3
	Up         mgl32.Vec3
	Right      mgl32.Vec3
	Projection mgl32.Mat4
	Pitch      float32
	Yaw        float32

	WorldUp     mgl32.Vec3
	Sensitivity float32 // degrees per mouse unit
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool

	// Viewport and cursor in pixels, origin top-left.
	Width, Height    int
	CursorX, CursorY float32
}

// NewCamera returns a camera looking down -Z with the cursor at the screen centre.
func NewCamera(width, height int) *Camera {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	c := &Camera{
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Sensitivity: 0.1,
		Fov:         45,
		Near:        0.1,
		Far:         1000,
		AspectRatio: float32(width) / float32(height),
		Width:       width,
		Height:      height,
		CursorX:     float32(width) / 2,
		CursorY:     float32(height) / 2,
	}
	c.updateCameraVectors()
	c.UpdateProjection()
	return c
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

// LookAt turns the camera toward target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() == 0 {
		return
	}
	flat := math.Hypot(float64(d.X()), float64(d.Z()))
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(d.Z()), float64(d.X()))))
	c.Pitch = mgl32.RadToDeg(float32(math.Atan2(float64(d.Y()), flat)))
	c.updateCameraVectors()
}

// Follow places the camera at a hull-local offset from the hull.
func (c *Camera) Follow(hullPos mgl32.Vec3, hullRot mgl32.Quat, offset mgl32.Vec3) {
	c.Position = hullPos.Add(hullRot.Rotate(offset))
}

func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// ScreenToRay converts a screen position to a world space ray from the camera.
func (c *Camera) ScreenToRay(screenX, screenY float32) Ray {
	ndcX := 2.0*screenX/float32(c.Width) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(c.Height)

	eye := c.Projection.Inv().Mul4x1(mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1.0, 0.0}

	dir := c.GetViewMatrix().Inv().Mul4x1(eye).Vec3().Normalize()
	return Ray{Origin: c.Position, Direction: dir}
}

// AimRay casts through the cursor. It implements AimSource.
func (c *Camera) AimRay() (Ray, bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return Ray{}, false
	}
	return c.ScreenToRay(c.CursorX, c.CursorY), true
}
