package testutil

import (
	"log/slog"
	"testing"

	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zaptest"
)

// NewLogger returns a slog logger that writes through t.Log.
func NewLogger(t testing.TB) *slog.Logger {
	return slog.New(zapslog.NewHandler(zaptest.NewLogger(t).Core(), zapslog.WithCaller(true)))
}
