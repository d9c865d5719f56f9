package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger. Development mode uses the console encoder
// with colored levels, production mode emits JSON.
func New(development bool) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	return config.Build()
}

// MustNew creates a logger and panics if it fails.
func MustNew(development bool) *zap.Logger {
	logger, err := New(development)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
