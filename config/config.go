// Package config reads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned when an environment value cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr     = "CAMPUSNAV_ADDR"
	EnvMapFile  = "CAMPUSNAV_MAP_FILE"
	EnvMaxDepth = "CAMPUSNAV_MAX_DEPTH"
	EnvLogLevel = "CAMPUSNAV_LOG_LEVEL"
	EnvGinMode  = "GIN_MODE"

	EnvMaxSessions  = "CAMPUSNAV_MAX_SESSIONS"
	EnvSessionTTL   = "CAMPUSNAV_SESSION_TTL"
	EnvHistoryLimit = "CAMPUSNAV_HISTORY_LIMIT"
)

// Config is the resolved service configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// MapFile is a YAML catalog path; empty selects the embedded campus.
	MapFile string
	// MaxDepth is the default node bound for route enumeration.
	MaxDepth int
	// LogLevel is a zap level name.
	LogLevel string
	// GinMode is "debug", "release" or "test".
	GinMode string

	// MaxSessions caps the in-memory session registry.
	MaxSessions int
	// SessionTTL drops sessions idle for longer; 0 keeps them until evicted.
	SessionTTL time.Duration
	// HistoryLimit is the number of requests each session remembers.
	HistoryLimit int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:     ":3000",
		MaxDepth: 10,
		LogLevel: "info",
		GinMode:  "release",

		MaxSessions:  1000,
		SessionTTL:   30 * time.Minute,
		HistoryLimit: 50,
	}
}

// Load reads the given .env files (".env" when none are named; missing files
// are ignored) and then the process environment. Variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvMapFile); ok {
		cfg.MapFile = v
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{EnvMaxDepth, &cfg.MaxDepth},
		{EnvMaxSessions, &cfg.MaxSessions},
		{EnvHistoryLimit, &cfg.HistoryLimit},
	} {
		if v, ok := lookup(p.name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return Config{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalid, p.name, v)
			}
			*p.dst = n
		}
	}
	if v, ok := lookup(EnvSessionTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a non-negative duration", ErrInvalid, EnvSessionTTL, v)
		}
		cfg.SessionTTL = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvGinMode); ok && v != "" {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvGinMode, v)
		}
	}

	return cfg, nil
}
