package vehicle

// Mode selects how the turn axis is turned into motion.
type Mode string

const (
	// ModeDifferential mixes forward and turn into independent left/right commands (skid steer).
	ModeDifferential Mode = "differential"
	// ModeSteered drives both sides equally and turns the wheels flagged as steering.
	ModeSteered Mode = "steered"
)

// Config holds the drive tuning. It is fixed for the lifetime of a Controller.
// Torques are in N·m, speeds in km/h, angles in degrees.
type Config struct {
	MaxMotorTorque    float32 `mapstructure:"maxMotorTorque" json:"maxMotorTorque"`
	BrakeTorque       float32 `mapstructure:"brakeTorque" json:"brakeTorque"`         // bite brake on direction reversal
	HoldBrakeTorque   float32 `mapstructure:"holdBrakeTorque" json:"holdBrakeTorque"` // brake while the command is ~0
	MaxSpeedKPH       float32 `mapstructure:"maxSpeedKPH" json:"maxSpeedKPH"`
	TorqueRamp        float32 `mapstructure:"torqueRamp" json:"torqueRamp"` // command units per second
	MaxSteerAngle     float32 `mapstructure:"maxSteerAngle" json:"maxSteerAngle"`
	SteerSpeed        float32 `mapstructure:"steerSpeed" json:"steerSpeed"` // degrees per second
	TurnDampening     float32 `mapstructure:"turnDampening" json:"turnDampening"`
	Deadzone          float32 `mapstructure:"deadzone" json:"deadzone"`
	AntiRollStiffness float32 `mapstructure:"antiRollStiffness" json:"antiRollStiffness"`
	RawInput          bool    `mapstructure:"rawInput" json:"rawInput"`
	Mode              Mode    `mapstructure:"mode" json:"mode"`
	ForwardAxis       string  `mapstructure:"forwardAxis" json:"forwardAxis"`
	TurnAxis          string  `mapstructure:"turnAxis" json:"turnAxis"`
	CommandEpsilon    float32 `mapstructure:"commandEpsilon" json:"commandEpsilon"`
	BiteRPM           float32 `mapstructure:"biteRPM" json:"biteRPM"`
	PivotSpeedKPH     float32 `mapstructure:"pivotSpeedKPH" json:"pivotSpeedKPH"`
	YawAssist         float32 `mapstructure:"yawAssist" json:"yawAssist"` // body yaw acceleration per unit turn, 0 disables
}

func DefaultConfig() Config {
	return Config{
		MaxMotorTorque:    500,
		BrakeTorque:       1800,
		HoldBrakeTorque:   1800,
		MaxSpeedKPH:       25,
		TorqueRamp:        4,
		MaxSteerAngle:     30,
		SteerSpeed:        90,
		TurnDampening:     0.5,
		Deadzone:          0.1,
		AntiRollStiffness: 5000,
		RawInput:          true,
		Mode:              ModeDifferential,
		ForwardAxis:       "Vertical",
		TurnAxis:          "Horizontal",
		CommandEpsilon:    0.01,
		BiteRPM:           5,
		PivotSpeedKPH:     2,
	}
}

// Sanitize returns a copy with every field saturated into its valid range.
// Nothing is rejected; out-of-range values are clamped.
func (c Config) Sanitize() Config {
	nonNeg := func(v *float32) {
		if *v < 0 {
			*v = 0
		}
	}
	nonNeg(&c.MaxMotorTorque)
	nonNeg(&c.BrakeTorque)
	nonNeg(&c.HoldBrakeTorque)
	nonNeg(&c.MaxSpeedKPH)
	nonNeg(&c.TorqueRamp)
	nonNeg(&c.MaxSteerAngle)
	nonNeg(&c.SteerSpeed)
	nonNeg(&c.AntiRollStiffness)
	nonNeg(&c.CommandEpsilon)
	nonNeg(&c.BiteRPM)
	nonNeg(&c.PivotSpeedKPH)
	nonNeg(&c.YawAssist)

	c.TurnDampening = clamp01(c.TurnDampening)
	c.Deadzone = clamp01(c.Deadzone)

	switch c.Mode {
	case ModeDifferential, ModeSteered:
	default:
		c.Mode = ModeDifferential
	}
	if c.ForwardAxis == "" {
		c.ForwardAxis = "Vertical"
	}
	if c.TurnAxis == "" {
		c.TurnAxis = "Horizontal"
	}
	return c
}
