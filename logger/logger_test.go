package logger_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/campusnav/logger"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := logger.New(lvl)
		require.NoError(t, err, lvl)
		want, _ := zapcore.ParseLevel(lvl)
		assert.True(t, l.Core().Enabled(want), lvl)
	}

	l, err := logger.New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New("chatty")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := logger.NewNop()
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_Console(t *testing.T) {
	l, err := logger.New("debug", logger.WithConsole(true))
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, logger.IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, logger.IsTerminal(f))
}
