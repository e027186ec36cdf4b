// Package logger configures the global zap logger used across the module.
// Library packages log through zap.L(); binaries call Init once at startup.
package logger

import (
	"go.uber.org/zap"
)

// New builds a console logger writing to stderr, so that stdout stays free
// for command output. debug lowers the level from info to debug.
func New(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return c.Build()
}

// Init replaces the global logger and returns it. The caller should Sync it
// before exiting.
func Init(debug bool) (*zap.Logger, error) {
	l, err := New(debug)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
