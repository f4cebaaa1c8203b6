package turret

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayIntersectSphere(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	ok, d, p := RayIntersectSphere(ray, mgl32.Vec3{0, 0, -10}, 2)
	require.True(t, ok)
	assert.InDelta(t, 8, d, 1e-4)
	assert.InDelta(t, -8, p.Z(), 1e-4)

	ok, _, _ = RayIntersectSphere(ray, mgl32.Vec3{0, 0, 10}, 2)
	assert.False(t, ok, "sphere behind the origin")

	ok, _, _ = RayIntersectSphere(ray, mgl32.Vec3{5, 0, -10}, 2)
	assert.False(t, ok, "miss to the side")

	ok, d, _ = RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 3)
	require.True(t, ok, "origin inside sphere")
	assert.InDelta(t, 3, d, 1e-4)

	ok, _, _ = RayIntersectSphere(Ray{}, mgl32.Vec3{0, 0, -10}, 2)
	assert.False(t, ok, "zero direction")
}

func TestRayIntersectPlane(t *testing.T) {
	down := Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, -1, -1}.Normalize()}

	ok, _, p := RayIntersectPlane(down, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.InDelta(t, -10, p.Z(), 1e-4)

	flat := Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 0, -1}}
	ok, _, _ = RayIntersectPlane(flat, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok, "parallel")

	upward := Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 1, 0}}
	ok, _, _ = RayIntersectPlane(upward, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok, "plane behind")
}

func TestSceneRaycastNearest(t *testing.T) {
	scene := Scene{
		Targets: []Target{
			{Name: "far", Center: mgl32.Vec3{0, 1, -40}, Radius: 2},
			{Name: "near", Center: mgl32.Vec3{0, 1, -20}, Radius: 2},
		},
		Ground: true,
	}

	hit, ok := scene.Raycast(Ray{Origin: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, 0, -1}})
	require.True(t, ok)
	assert.Equal(t, "near", hit.Target)
	assert.InDelta(t, 18, hit.Distance, 1e-4)

	hit, ok = scene.Raycast(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, -1, 0}.Normalize()})
	require.True(t, ok)
	assert.Empty(t, hit.Target, "ground hit has no target name")
	assert.InDelta(t, 5, hit.Point.X(), 1e-4)

	_, ok = scene.Raycast(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}})
	assert.False(t, ok)

	_, ok = Scene{}.Raycast(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}})
	assert.False(t, ok, "empty scene")
}
