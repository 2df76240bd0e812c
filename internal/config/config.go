package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	RedisURL      string
	DatabaseURL   string
	SessionTTL    time.Duration
	SweepInterval time.Duration
	AgeValidation app.AgeMode
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// ValidatorOptions returns the validator settings derived from the config.
func (c Config) ValidatorOptions() app.Options {
	return app.Options{Age: c.AgeValidation}
}

// LoadDotEnv loads a .env file when one exists. It runs before the logger
// is built, so the outcome is returned for ReportDotEnv.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// ReportDotEnv logs the result of LoadDotEnv. A missing file is routine.
func ReportDotEnv(logger *zap.Logger, err error) {
	switch {
	case err == nil:
		logger.Debug("Loaded .env file")
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No .env file found, using system environment")
	default:
		logger.Warn("Failed to load .env file", zap.Error(err))
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:        get("PORT", "8080"),
		Env:         get("APP_ENV", "development"),
		LogLevel:    get("LOG_LEVEL", "info"),
		RedisURL:    get("REDIS_URL", ""),
		DatabaseURL: get("DATABASE_URL", ""),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	var err error
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", get("SESSION_TTL", "30m")); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = parseDuration("SESSION_SWEEP_INTERVAL", get("SESSION_SWEEP_INTERVAL", "5m")); err != nil {
		return Config{}, err
	}

	mode, ok := app.ParseAgeMode(get("AGE_VALIDATION", "loose"))
	if !ok {
		return Config{}, fmt.Errorf("invalid AGE_VALIDATION %q: want loose or strict", get("AGE_VALIDATION", ""))
	}
	cfg.AgeValidation = mode

	return cfg, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}
