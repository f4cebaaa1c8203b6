package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"Tankette/internal/config"
	"Tankette/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("drivesim", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "YAML or JSON config file (default: ./drivesim.yaml or ./configs/drivesim.yaml)")
	flags.Duration("duration", 0, "simulated run length, e.g. 30s")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.Bool("realtime", false, "step against the wall clock instead of as fast as possible")
	flags.Int64("seed", 0, "terrain noise seed")
	flags.Float32("terrain", 0, "terrain height amplitude in metres, 0 for flat ground")
	flags.Int("telemetry-every", 0, "fixed steps between telemetry lines")
	_ = flags.Parse(os.Args[1:])

	if err := run(*configPath, flags); err != nil {
		fmt.Fprintln(os.Stderr, "drivesim:", err)
		os.Exit(1)
	}
}

func run(configPath string, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"duration":             "duration",
		"logLevel":             "log-level",
		"realtime":             "realtime",
		"sim.seed":             "seed",
		"sim.terrainAmplitude": "terrain",
		"telemetryEvery":       "telemetry-every",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("could not bind flag %s: %w", name, err)
		}
	}

	if err := config.Load(configPath); err != nil {
		return err
	}
	settings, err := config.Get()
	if err != nil {
		return err
	}
	if err := logger.InitWithLevel(settings.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Log.Info("Loaded config", zap.String("file", used))
	}

	sc := newScene(settings)

	if settings.Realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if settings.Duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, settings.Duration)
			defer cancel()
		}
		err = sc.engine.RunRealtime(ctx, settings.FrameRate)
	} else {
		err = sc.engine.RunFor(settings.Duration, 1/settings.FrameRate)
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	body := sc.world.Body
	logger.Log.Info("Drive finished",
		zap.Duration("simTime", sc.engine.SimTime()),
		zap.Uint64("ticks", sc.drive.Ticks()),
		zap.Float32("displacement", mgl32.Vec2{body.Position.X(), body.Position.Z()}.Len()),
		zap.Float32("yaw", mgl32.RadToDeg(body.Yaw)),
		zap.Bool("scriptDone", sc.player.Done()))
	return nil
}
