package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"oleander_app_echo/internal/app"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, app.AgeLoose, cfg.AgeValidation)
	assert.False(t, cfg.IsProduction())
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":           "9090",
		"APP_ENV":        "production",
		"REDIS_URL":      "redis://localhost:6379/0",
		"SESSION_TTL":    "2h",
		"AGE_VALIDATION": "strict",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, app.Options{Age: app.AgeStrict}, cfg.ValidatorOptions())
}

func TestFromLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "http"}},
		{name: "bad ttl", env: map[string]string{"SESSION_TTL": "soon"}},
		{name: "negative sweep", env: map[string]string{"SESSION_SWEEP_INTERVAL": "-1m"}},
		{name: "bad age mode", env: map[string]string{"AGE_VALIDATION": "fuzzy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	err := LoadDotEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OLEANDER_DOTENV_TEST=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("OLEANDER_DOTENV_TEST") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("OLEANDER_DOTENV_TEST"))
}

func TestReportDotEnv(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		level   zapcore.Level
		message string
	}{
		{name: "loaded", err: nil, level: zapcore.DebugLevel, message: "Loaded .env file"},
		{name: "missing", err: &fs.PathError{Op: "open", Path: ".env", Err: fs.ErrNotExist}, level: zapcore.DebugLevel, message: "No .env file found, using system environment"},
		{name: "broken", err: errors.New("unexpected character"), level: zapcore.WarnLevel, message: "Failed to load .env file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			ReportDotEnv(zap.New(core), tt.err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, tt.message, entries[0].Message)
		})
	}
}
