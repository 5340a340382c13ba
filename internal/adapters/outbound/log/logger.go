package log

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for the given level and format.
// Unknown levels fall back to info; format "console" selects the development encoder.
func NewLogger(level, format string) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel.SetLevel(zap.InfoLevel)
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	}
	cfg.Level = logLevel
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"json"`
	logger *zap.Logger
}

// Initialize registers the logger in the dependency container.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(il.Level, il.Format)
	if err != nil {
		return ctx, err
	}
	il.logger = logger
	depend.Register(logger)
	return ctx, nil
}

// Close flushes buffered log entries.
func (il *InitLogger) Close() {
	if il.logger != nil {
		_ = il.logger.Sync()
	}
}
