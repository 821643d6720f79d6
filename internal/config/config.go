// Package config loads fixturegen settings from flags and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/ukaji3/finfixture-go/pkg/finfixture"
)

// EnvPrefix prefixes every environment variable read by fixturegen.
const EnvPrefix = "FIXTUREGEN"

// Config holds all fixturegen configuration
type Config struct {
	Output string       `mapstructure:"output"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment bindings in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindEnvVars(v)
	return v
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("output", finfixture.DefaultOutputPath)

	// stdout carries only the confirmation line
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.format", "console")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("output", EnvPrefix+"_OUTPUT")
	v.BindEnv("logger.level", EnvPrefix+"_LOG_LEVEL")
	v.BindEnv("logger.output", EnvPrefix+"_LOG_OUTPUT")
	v.BindEnv("logger.format", EnvPrefix+"_LOG_FORMAT")
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output is required")
	}

	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logger.level must be debug, info, warn or error, got %q", c.Logger.Level)
	}

	return nil
}
