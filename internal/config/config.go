package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Tankette/internal/input"
	"Tankette/internal/sim"
	"Tankette/internal/turret"
	"Tankette/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. TANKETTE_VEHICLE_MAXSPEEDKPH.
const EnvPrefix = "TANKETTE"

// Settings is everything a drivesim run needs.
type Settings struct {
	LogLevel       string        `json:"logLevel" mapstructure:"logLevel"`
	TickRate       float32       `json:"tickRate" mapstructure:"tickRate"`   // fixed steps per second
	FrameRate      float32       `json:"frameRate" mapstructure:"frameRate"` // variable frames per second
	Duration       time.Duration `json:"duration" mapstructure:"duration"`
	Realtime       bool          `json:"realtime" mapstructure:"realtime"`
	TelemetryEvery int           `json:"telemetryEvery" mapstructure:"telemetryEvery"` // fixed steps between telemetry lines, 0 disables

	Vehicle vehicle.Config     `json:"vehicle" mapstructure:"vehicle"`
	Turret  turret.Config      `json:"turret" mapstructure:"turret"`
	Sim     sim.Config         `json:"sim" mapstructure:"sim"`
	Axes    input.AxisSettings `json:"axes" mapstructure:"axes"`

	AimAt   mgl32.Vec3       `json:"aimAt" mapstructure:"aimAt"`
	Targets []turret.Target  `json:"targets,omitempty" mapstructure:"targets,omitempty"`
	Script  []input.Keyframe `json:"script,omitempty" mapstructure:"script,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		LogLevel:       "info",
		TickRate:       50,
		FrameRate:      60,
		Duration:       20 * time.Second,
		TelemetryEvery: 25,
		Vehicle:        vehicle.DefaultConfig(),
		Turret:         turret.DefaultConfig(),
		Sim:            sim.DefaultConfig(),
		Axes:           input.DefaultAxisSettings(),
		AimAt:          mgl32.Vec3{0, 0, -50},
	}
}

// Load registers defaults and environment overrides and reads the config
// file. An explicit path must exist; with an empty path drivesim.yaml (or
// .json) is looked up in the working directory and ./configs, and a missing
// file leaves the defaults in place.
func Load(path string) error {
	if err := setDefaults(Defaults()); err != nil {
		return err
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("drivesim")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get decodes the loaded configuration and validates it.
func Get() (Settings, error) {
	s := Defaults()
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the run cannot start with. Tuning values are
// not checked here; the controller saturates them.
func (s Settings) Validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %v", s.TickRate)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %v", s.FrameRate)
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", s.Duration)
	}
	switch s.Vehicle.Mode {
	case vehicle.ModeDifferential, vehicle.ModeSteered, "":
	default:
		return fmt.Errorf("unknown vehicle mode %q", s.Vehicle.Mode)
	}
	for i, k := range s.Script {
		if k.Axis == "" {
			return fmt.Errorf("script keyframe %d has no axis", i)
		}
		if k.At < 0 {
			return fmt.Errorf("script keyframe %d is before the start", i)
		}
	}
	for i, tgt := range s.Targets {
		if tgt.Radius <= 0 {
			return fmt.Errorf("target %d (%s) needs a positive radius", i, tgt.Name)
		}
	}
	return nil
}

// setDefaults registers every leaf of the default settings so environment
// variables can override nested keys.
func setDefaults(s Settings) error {
	var tree map[string]any
	if err := mapstructure.Decode(s, &tree); err != nil {
		return fmt.Errorf("error encoding defaults: %w", err)
	}
	setTree("", tree)
	return nil
}

func setTree(prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			setTree(key, sub)
			continue
		}
		viper.SetDefault(key, v)
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
