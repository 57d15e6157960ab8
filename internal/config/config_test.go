package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 6, cfg.Ticks)
	assert.Equal(t, 3, cfg.MarginTicks)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Nil(t, cfg.Slice.Z)
	assert.Nil(t, cfg.Slice.W)
	assert.False(t, cfg.MayClip())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperlife.yaml")
	content := `
ticks: 4
margin_ticks: 2
slice:
  z: 3
logging:
  level: debug
sweep:
  seeds: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Ticks)
	assert.Equal(t, 2, cfg.MarginTicks)
	require.NotNil(t, cfg.Slice.Z)
	assert.Equal(t, 3, *cfg.Slice.Z)
	assert.Nil(t, cfg.Slice.W)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Sweep.Seeds)
	// Unset keys keep defaults.
	assert.Equal(t, 4, cfg.Sweep.Workers)
	assert.Equal(t, 60, cfg.Viewer.TPS)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: [1, 2"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv("HYPERLIFE_TICKS", "9")
	t.Setenv("HYPERLIFE_MARGIN", "5")
	t.Setenv("HYPERLIFE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Ticks)
	assert.Equal(t, 5, cfg.MarginTicks)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("HYPERLIFE_TICKS", "six")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HYPERLIFE_TICKS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative ticks", func(c *Config) { c.Ticks = -1 }},
		{"negative margin", func(c *Config) { c.MarginTicks = -2 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
		{"density above one", func(c *Config) { c.Sweep.Density = 1.5 }},
		{"zero viewer scale", func(c *Config) { c.Viewer.Scale = 0 }},
		{"negative sweep width", func(c *Config) { c.Sweep.Width = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMayClip(t *testing.T) {
	cfg := Default()
	cfg.Ticks = 7
	assert.True(t, cfg.MayClip())
	cfg.MarginTicks = 4
	assert.False(t, cfg.MayClip())
}
