package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/phonebook-api/internal/config"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		name       string
		level      string
		debugShown bool
		infoShown  bool
		warnLogged bool
	}{
		{name: "debug", level: "debug", debugShown: true, infoShown: true},
		{name: "info", level: "info", infoShown: true},
		{name: "upper case", level: "WARN"},
		{name: "invalid falls back to info", level: "verbose", infoShown: true, warnLogged: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: tc.level}, buf)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Same(t, l, slog.Default(), "logger should be installed as default")

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			if tc.warnLogged {
				require.Len(t, entries, 1)
				assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
				assert.Equal(t, tc.level, entries[0]["configured_level"])
			} else {
				assert.Empty(t, entries)
			}

			buf.Reset()
			l.Debug("debug line")
			l.Info("info line")
			out := buf.String()
			assert.Equal(t, tc.debugShown, strings.Contains(out, "debug line"))
			assert.Equal(t, tc.infoShown, strings.Contains(out, "info line"))
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, ok := logger.ParseLevel("Error")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, level)

	level, ok = logger.ParseLevel("")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestContextLogger(t *testing.T) {
	buf, base := logger.SetupTestLogger(t)

	assert.Same(t, base, logger.FromContext(context.Background()))

	fallback := slog.New(slog.NewJSONHandler(buf, nil))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	scoped := base.With("trace_id", "abc")
	ctx := logger.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))

	logger.FromContext(ctx).Info("hello")
	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
}
