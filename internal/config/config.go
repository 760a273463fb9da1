// Package config provides server configuration with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (KOSHO_*)
//  2. Config file (~/.kosho/config.yaml, or ./config.yaml)
//  3. Default values
//
// Validation fails fast with sentinel errors usable with errors.Is().
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrInvalidLanguage indicates an unsupported response language.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Supported response languages.
var supportedLanguages = []string{"ja", "en"}

// Config stores server configuration.
type Config struct {
	// Language selects the response and instructions language ("ja" or "en").
	Language string `mapstructure:"language"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level"`

	// LogJSON switches log output from text to JSON.
	LogJSON bool `mapstructure:"log_json"`

	// HTTPAddr, when non-empty, serves MCP over streamable HTTP on this
	// address instead of stdio.
	HTTPAddr string `mapstructure:"http_addr"`
}

// Load reads configuration from defaults, config file, and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".kosho"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("KOSHO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "ja")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("http_addr", "")
}

// Validate checks the configuration, returning the first problem found.
func (c *Config) Validate() error {
	if !slices.Contains(supportedLanguages, c.Language) {
		return fmt.Errorf("%w: %q (supported: %s)",
			ErrInvalidLanguage, c.Language, strings.Join(supportedLanguages, ", "))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured log level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}
