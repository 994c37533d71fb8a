package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			log, sync, err := New("debug", format)
			require.NoError(t, err)
			require.NotNil(t, log)
			require.NotNil(t, sync)
			assert.True(t, log.Enabled(context.Background(), slog.LevelDebug), "debug should be enabled")
		})
	}

	t.Run("level filters lower severities", func(t *testing.T) {
		log, _, err := New("warn", "json")
		require.NoError(t, err)
		assert.False(t, log.Enabled(context.Background(), slog.LevelInfo), "info should be disabled")
		assert.True(t, log.Enabled(context.Background(), slog.LevelWarn), "warn should be enabled")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, _, err := New("verbose", "json")
		assert.Error(t, err)
	})
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Info("discarded", "k", "v")
	})
}
