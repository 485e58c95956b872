// Package logging builds the zap logger used by the CLI. The engine itself
// only takes an injected *zap.Logger and works fine with zap.NewNop().
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger. With debug enabled it shows debug-level
// pipeline traces (raw vs normalized text, per-stage decisions); otherwise
// only warnings and errors reach the terminal so JSON output stays clean.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
