package applog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// useObserver routes the package logger into an in-memory core for the test
func useObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	prev := def
	core, logs := observer.New(level)
	setLogger(zap.New(core))
	t.Cleanup(func() {
		setLogger(prev)
		SetVerbose(false)
	})
	return logs
}

func TestSetVerbose(t *testing.T) {
	logs := useObserver(t)

	SetVerbose(false)
	Debug("hidden")
	Info("hidden too")
	Warn("shown")
	assert.Equal(t, 1, logs.Len())
	assert.False(t, Enabled(zapcore.DebugLevel))

	SetVerbose(true)
	Debug("now shown")
	assert.True(t, Enabled(zapcore.DebugLevel))
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "now shown", logs.All()[1].Message)
}

func TestLevelsAndFields(t *testing.T) {
	logs := useObserver(t)
	SetVerbose(true)

	Info("resolved", zap.String("root", "/srv/app"))
	Error("failed", zap.Int("attempt", 3))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/srv/app", entries[0].ContextMap()["root"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(3), entries[1].ContextMap()["attempt"])
}

func TestContextFields(t *testing.T) {
	logs := useObserver(t)

	ctx := AddContextFields(context.Background(), zap.String("url", "http://a"), zap.Int("try", 1))
	ctx = AddContextFields(ctx, zap.Int("try", 2))

	FromContext(ctx).Warn("probe")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "http://a", fields["url"])
	assert.Equal(t, int64(2), fields["try"])
}

func TestSetOutput(t *testing.T) {
	prev := def
	t.Cleanup(func() { setLogger(prev) })

	var buf bytes.Buffer
	SetOutput(&buf)
	Warn("written", zap.String("key", "value"))

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "written")
	assert.Contains(t, buf.String(), "value")
}
