// Package config loads service settings from an optional file, BREW_*
// environment variables and built-in defaults, in that order of precedence
// (environment wins over file).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/denisok6893-rgb/brew-matching/internal/matching"
)

const envPrefix = "BREW"

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Catalog  CatalogConfig   `mapstructure:"catalog"`
	Storage  StorageConfig   `mapstructure:"storage"`
	Matching matching.Limits `mapstructure:"matching"`
	Log      LogConfig       `mapstructure:"log"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// RateLimit is requests per second per client; 0 disables it.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

type CatalogConfig struct {
	// Path to a YAML or JSON catalog; empty uses the embedded catalog.
	Path string `mapstructure:"path"`
}

type StorageConfig struct {
	// SQLitePath enables the saved-equipment store when set.
	SQLitePath string `mapstructure:"sqlite_path"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	limits := matching.DefaultLimits()
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("catalog.path", "")
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("matching.default_limit", limits.DefaultLimit)
	v.SetDefault("matching.max_limit", limits.MaxLimit)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("metrics.enabled", true)
}

// Load reads the config file at path (if any) into v and decodes the result.
// A nil v gets a fresh instance from New.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must be >= 0"))
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		errs = append(errs, errors.New("server.rate_burst must be > 0 when rate limiting"))
	}
	if c.Matching.DefaultLimit <= 0 {
		errs = append(errs, errors.New("matching.default_limit must be > 0"))
	}
	if c.Matching.MaxLimit < c.Matching.DefaultLimit {
		errs = append(errs, errors.New("matching.max_limit must be >= matching.default_limit"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
