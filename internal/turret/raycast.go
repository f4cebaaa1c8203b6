package turret

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space. Direction need not be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is a ray intersection.
type Hit struct {
	Distance float32
	Point    mgl32.Vec3
	Target   string // empty for the ground plane
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, center mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(center)

	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return false, 0, mgl32.Vec3{}
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest non-negative root; an origin inside the sphere hits the far side.
	var t float32
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		return false, 0, mgl32.Vec3{}
	}

	return true, t, ray.At(t)
}

// RayIntersectPlane intersects a ray with the plane through point with the given normal.
func RayIntersectPlane(ray Ray, point, normal mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	const epsilon = 1e-6

	denom := normal.Dot(ray.Direction)
	if denom > -epsilon && denom < epsilon {
		return false, 0, mgl32.Vec3{} // parallel
	}

	t := point.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return false, 0, mgl32.Vec3{}
	}
	return true, t, ray.At(t)
}

// Target is something the turret can aim at.
type Target struct {
	Name   string     `mapstructure:"name" json:"name"`
	Center mgl32.Vec3 `mapstructure:"center" json:"center"`
	Radius float32    `mapstructure:"radius" json:"radius"`
}

// Scene is what an aim ray is cast against: spherical targets and an optional
// horizontal ground plane.
type Scene struct {
	Targets     []Target
	Ground      bool
	GroundLevel float32
}

// Raycast returns the nearest hit along the ray.
func (s Scene) Raycast(ray Ray) (Hit, bool) {
	best := Hit{Distance: float32(math.Inf(1))}
	found := false

	for _, tgt := range s.Targets {
		if ok, d, p := RayIntersectSphere(ray, tgt.Center, tgt.Radius); ok && d < best.Distance {
			best = Hit{Distance: d, Point: p, Target: tgt.Name}
			found = true
		}
	}
	if s.Ground {
		ok, d, p := RayIntersectPlane(ray, mgl32.Vec3{0, s.GroundLevel, 0}, mgl32.Vec3{0, 1, 0})
		if ok && d < best.Distance {
			best = Hit{Distance: d, Point: p}
			found = true
		}
	}
	return best, found
}
