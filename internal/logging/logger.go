// Package logging builds the console logger of the harness.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelFor maps the number of -v flags to the lowest level shown.
// Quiet runs only show warnings, so a progress bar can own the terminal.
func LevelFor(verbosity int, quiet bool) zapcore.Level {
	switch {
	case quiet:
		return zapcore.WarnLevel
	case verbosity > 0:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a console logger writing to w
func New(level zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !isTerminal(w) {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
