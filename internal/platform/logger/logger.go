// Package logger builds the process *slog.Logger on top of a zap core.
package logger

import (
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at level ("debug", "info", "warn", "error").
// format "json" selects the production encoder, anything else the
// development console encoder. The returned sync flushes buffered entries.
func New(level, format string) (*slog.Logger, func() error, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build zap logger: %w", err)
	}
	return fromZap(zl), zl.Sync, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return fromZap(zap.NewNop())
}

func fromZap(zl *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(zl.Core(), zapslog.WithCaller(true)))
}
