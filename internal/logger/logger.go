package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called so
// library packages and tests can log unconditionally.
var Log = zap.NewNop()

// Init sets up a development logger at info level.
func Init() {
	if err := InitWithLevel("info"); err != nil {
		Log = zap.NewNop()
	}
}

// InitWithLevel builds a console logger at the given level ("debug", "info", "warn", "error").
func InitWithLevel(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	Log = l
	return nil
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
