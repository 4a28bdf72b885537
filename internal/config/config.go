package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAppPort  = "8000"
	DefaultLogLevel = "info"
)

type Config struct {
	AppPort  string `toml:"app_port"`
	LogLevel string `toml:"log_level"`

	DatabaseDSN string `toml:"database_dsn"`

	// CookieSecure adds the Secure attribute to the session cookie.
	// Leave off when serving plain HTTP in development.
	CookieSecure bool `toml:"cookie_secure"`

	// SessionSweepInterval enables the background reaper when > 0.
	// Expiry is still enforced on every lookup regardless.
	SessionSweepInterval duration `toml:"session_sweep_interval"`

	AllowAdminRegistration bool `toml:"allow_admin_registration"`
}

// duration lets TOML files spell intervals as "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// SweepInterval returns the configured reaper interval.
func (c Config) SweepInterval() time.Duration {
	return c.SessionSweepInterval.Duration
}

// Load builds the configuration from an optional TOML file named by
// BOOKING_CONFIG, then environment variables, then defaults.
func Load() (Config, error) {
	var cfg Config

	if path := os.Getenv("BOOKING_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.AppPort == "" {
		cfg.AppPort = DefaultAppPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APP_PORT"); v != "" {
		cfg.AppPort = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = b
	}

	if v := os.Getenv("ALLOW_ADMIN_REGISTRATION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ALLOW_ADMIN_REGISTRATION: %w", err)
		}
		cfg.AllowAdminRegistration = b
	}

	if v := os.Getenv("SESSION_SWEEP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SESSION_SWEEP_INTERVAL: %w", err)
		}
		cfg.SessionSweepInterval = duration{d}
	}

	return nil
}
