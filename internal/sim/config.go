package sim

import "github.com/go-gl/mathgl/mgl32"

// Config describes the stand-in vehicle and the ground it drives on.
// Lengths are in metres, mass in kg.
type Config struct {
	Mass          float32 `mapstructure:"mass" json:"mass"`
	Length        float32 `mapstructure:"length" json:"length"`
	Width         float32 `mapstructure:"width" json:"width"` // track centre to centre
	LinearDrag    float32 `mapstructure:"linearDrag" json:"linearDrag"`
	AngularDrag   float32 `mapstructure:"angularDrag" json:"angularDrag"`
	LateralGrip   float32 `mapstructure:"lateralGrip" json:"lateralGrip"`
	WheelsPerSide int     `mapstructure:"wheelsPerSide" json:"wheelsPerSide"`
	SteeredAxles  int     `mapstructure:"steeredAxles" json:"steeredAxles"` // front axles flagged as steering
	WheelRadius   float32 `mapstructure:"wheelRadius" json:"wheelRadius"`
	WheelMass     float32 `mapstructure:"wheelMass" json:"wheelMass"`
	Suspension    float32 `mapstructure:"suspension" json:"suspension"`

	Seed             int64   `mapstructure:"seed" json:"seed"`
	TerrainAmplitude float32 `mapstructure:"terrainAmplitude" json:"terrainAmplitude"`
	TerrainScale     float32 `mapstructure:"terrainScale" json:"terrainScale"`

	StartPosition mgl32.Vec3 `mapstructure:"startPosition" json:"startPosition"`
	StartYaw      float32    `mapstructure:"startYaw" json:"startYaw"` // degrees
}

func DefaultConfig() Config {
	return Config{
		Mass:             2000,
		Length:           4,
		Width:            2.4,
		LinearDrag:       0.2,
		AngularDrag:      2,
		LateralGrip:      8,
		WheelsPerSide:    4,
		SteeredAxles:     1,
		WheelRadius:      0.4,
		WheelMass:        20,
		Suspension:       0.3,
		Seed:             1,
		TerrainAmplitude: 0,
		TerrainScale:     0.05,
	}
}

// YawInertia of a uniform box with the configured footprint.
func (c Config) YawInertia() float32 {
	return c.Mass * (c.Length*c.Length + c.Width*c.Width) / 12
}
