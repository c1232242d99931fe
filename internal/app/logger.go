package app

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Production gets JSON, anything
// else gets a colored console encoder.
func NewLogger(environment string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(environment), "production") {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		return cfg.Build()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
