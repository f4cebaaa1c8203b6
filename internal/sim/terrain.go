package sim

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Terrain is a Perlin height field. With zero amplitude it is a flat plane at Base.
type Terrain struct {
	Base      float32
	Amplitude float32
	Scale     float32 // noise frequency per metre
	noise     *perlin.Perlin
}

func NewTerrain(seed int64, amplitude, scale float32) *Terrain {
	return &Terrain{
		Amplitude: amplitude,
		Scale:     scale,
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Flat returns level ground at the given height.
func Flat(height float32) *Terrain {
	return &Terrain{Base: height}
}

func (t *Terrain) Height(x, z float32) float32 {
	if t.noise == nil || t.Amplitude == 0 {
		return t.Base
	}
	n := t.noise.Noise2D(float64(x*t.Scale), float64(z*t.Scale))
	return t.Base + t.Amplitude*float32(n)
}

// Normal estimates the surface normal by central differences.
func (t *Terrain) Normal(x, z float32) mgl32.Vec3 {
	if t.noise == nil || t.Amplitude == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	const h = 0.1
	dx := (t.Height(x+h, z) - t.Height(x-h, z)) / (2 * h)
	dz := (t.Height(x, z+h) - t.Height(x, z-h)) / (2 * h)
	return mgl32.Vec3{-dx, 1, -dz}.Normalize()
}
