package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContextFallback ensures the global logger is returned when the context carries none.
func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	require.Equal(t, Logger(), FromContext(context.Background()))
}

// TestContextHelpers ensures scoped loggers round-trip through the context.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	named := WithName(ctx, "checker")
	require.NotEqual(t, FromContext(ctx), FromContext(named))

	withKV := WithKV(named, "package", "gemini-cli")
	require.NotEqual(t, FromContext(named), FromContext(withKV))
}
