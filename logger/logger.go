// Package logger builds the zap loggers used by the service layers.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	// Console selects the human-readable, colored encoder instead of JSON.
	Console bool
}

// Option configures Options.
type Option func(*Options)

// WithConsole switches to the console encoder when on is true.
func WithConsole(on bool) Option {
	return func(o *Options) { o.Console = on }
}

// New returns a production logger at the given level
// ("debug", "info", "warn", "error"). Timestamps are ISO8601.
// Output is JSON unless WithConsole(true) is given.
func New(level string, opts ...Option) (*zap.Logger, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.Console {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
