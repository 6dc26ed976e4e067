package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWithMode(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := NewWithMode(mode, "warn")
		require.NoError(t, err, mode)
		assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zap.InfoLevel))
		assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zap.WarnLevel))
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)
	assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("path", "/data/config.json").Info("storage loaded", "profiles", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "storage loaded", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"path":     "/data/config.json",
		"profiles": int64(2),
	}, entries[0].ContextMap())
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	l.Sync()
}
