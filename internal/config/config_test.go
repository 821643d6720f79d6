package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "test_import.xlsx", cfg.Output)
	assert.Equal(t, LoggerConfig{Level: "info", Output: "stderr", Format: "console"}, cfg.Logger)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FIXTUREGEN_OUTPUT", "out/fixture.xlsx")
	t.Setenv("FIXTUREGEN_LOG_LEVEL", "debug")
	t.Setenv("FIXTUREGEN_LOG_FORMAT", "json")
	t.Setenv("FIXTUREGEN_LOG_OUTPUT", "stdout")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "out/fixture.xlsx", cfg.Output)
	assert.Equal(t, LoggerConfig{Level: "debug", Output: "stdout", Format: "json"}, cfg.Logger)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Output: "a.xlsx", Logger: LoggerConfig{Level: "info", Format: "json"}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"uppercase level", func(c *Config) { c.Logger.Level = "WARN" }, false},
		{"blank output", func(c *Config) { c.Output = "  " }, true},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, true},
		{"bad level", func(c *Config) { c.Logger.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("FIXTUREGEN_LOG_FORMAT", "xml")

	_, err := Load(New())
	assert.ErrorContains(t, err, "logger.format")
}
