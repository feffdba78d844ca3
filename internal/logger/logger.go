package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process-wide zap logger. Every entry carries the service name.
func NewLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zaplogger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return zaplogger.With(zap.String("service", "Classroom-Service"))
}
