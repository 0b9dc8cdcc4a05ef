package config

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the JSON logger shared by every service. LOG_LEVEL accepts
// zap level names and defaults to info.
func NewLogger(service string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	return logger.Sugar().With("service", service)
}
