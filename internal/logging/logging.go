// Package logging builds the zap loggers used by the emailsyntax command.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ValidLogLevels lists all valid zap log levels for validation.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLogLevel checks if the given level string is a valid zap log level.
// Comparison is case-insensitive.
func IsValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// New constructs a logger writing to w.
// If env is "prod", it uses a JSON encoder; otherwise a console encoder.
// An invalid level falls back to "info" and is reported through the
// returned logger so the misconfiguration is visible.
func New(level, env string, w io.Writer) *zap.Logger {
	var encCfg zapcore.EncoderConfig
	if env == "prod" {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	// RFC-3339 timestamps.
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if env == "prod" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	badLevel := lvl.UnmarshalText([]byte(strings.ToLower(level))) != nil
	if badLevel {
		lvl.SetLevel(zap.InfoLevel)
	}

	logger := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
	if badLevel {
		logger.Warn("invalid log level, defaulting to info",
			zap.String("level", level),
			zap.Strings("valid", ValidLogLevels))
	}
	return logger
}
