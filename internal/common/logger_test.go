package common

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger(t *testing.T) {
	restoreDefaultLogger(t)

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr string
	}{
		{name: "defaults", level: "info", format: "console"},
		{name: "debug json", level: "debug", format: "json"},
		{name: "warn", level: "warn", format: "console"},
		{name: "error", level: "error", format: "json"},
		{name: "bad level", level: "loud", format: "console", wantErr: "invalid log level"},
		{name: "bad format", level: "info", format: "xml", wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSetupLoggerRespectsLevel(t *testing.T) {
	restoreDefaultLogger(t)

	require.NoError(t, SetupLogger("warn", "console"))

	ctx := context.Background()
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelWarn))
}

func TestSilenceLogger(t *testing.T) {
	restoreDefaultLogger(t)

	SilenceLogger()
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
