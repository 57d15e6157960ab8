// Package config loads hyperlife settings from YAML files and the environment.
// Order of precedence: defaults -> config file -> environment -> CLI flags.
package config

import (
	"fmt"
	"os"
	"strconv"

	"hyperlife/internal/logging"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTicks is the number of generations simulated by a run.
	DefaultTicks = 6
	// DefaultMarginTicks is the growth headroom the lattice is sized for.
	DefaultMarginTicks = 3
)

// Config contains all hyperlife settings.
type Config struct {
	// Ticks is the number of generations to simulate.
	Ticks int `yaml:"ticks"`

	// MarginTicks sizes the lattice: edge = max(H, W) + 4*MarginTicks.
	// Runs longer than 2*MarginTicks may reach the boundary.
	MarginTicks int `yaml:"margin_ticks"`

	// Slice selects the printed cross-section. Nil components mean edge/2.
	Slice SliceConfig `yaml:"slice"`

	Logging LoggingConfig `yaml:"logging"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Sweep   SweepConfig   `yaml:"sweep"`
}

// SliceConfig selects the z/w plane printed after every tick.
type SliceConfig struct {
	Z *int `yaml:"z,omitempty"`
	W *int `yaml:"w,omitempty"`
}

// LoggingConfig configures operational logging on stderr.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
}

// ViewerConfig configures the interactive viewer.
type ViewerConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
	// GenerationsPerSecond paces ticks independently of the frame rate.
	GenerationsPerSecond int   `yaml:"generations_per_second"`
	Seed                 int64 `yaml:"seed"`
}

// SweepConfig configures batch evaluation of random seed patterns.
type SweepConfig struct {
	Seeds   int     `yaml:"seeds"`
	Workers int     `yaml:"workers"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
}

// Default returns a Config matching the reference run.
func Default() *Config {
	return &Config{
		Ticks:       DefaultTicks,
		MarginTicks: DefaultMarginTicks,
		Logging:     LoggingConfig{Level: "info"},
		Viewer: ViewerConfig{
			Scale:                12,
			TPS:                  60,
			GenerationsPerSecond: 2,
			Seed:                 42,
		},
		Sweep: SweepConfig{
			Seeds:   16,
			Workers: 4,
			Width:   5,
			Height:  5,
			Density: 0.35,
		},
	}
}

// Load returns defaults overlaid with path (when non-empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies HYPERLIFE_* environment overrides.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HYPERLIFE_TICKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HYPERLIFE_TICKS: %w", err)
		}
		c.Ticks = n
	}
	if v := os.Getenv("HYPERLIFE_MARGIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HYPERLIFE_MARGIN: %w", err)
		}
		c.MarginTicks = n
	}
	if v := os.Getenv("HYPERLIFE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", c.Ticks)
	}
	if c.MarginTicks < 0 {
		return fmt.Errorf("margin_ticks must be non-negative, got %d", c.MarginTicks)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	if c.Viewer.Scale <= 0 || c.Viewer.TPS <= 0 || c.Viewer.GenerationsPerSecond <= 0 {
		return fmt.Errorf("viewer scale, tps and generations_per_second must be positive")
	}
	if c.Sweep.Density < 0 || c.Sweep.Density > 1 {
		return fmt.Errorf("sweep density must be between 0 and 1, got %f", c.Sweep.Density)
	}
	if c.Sweep.Width < 0 || c.Sweep.Height < 0 {
		return fmt.Errorf("sweep pattern size must be non-negative, got %dx%d", c.Sweep.Width, c.Sweep.Height)
	}
	return nil
}

// MayClip reports whether Ticks exceeds the headroom MarginTicks provides.
func (c *Config) MayClip() bool {
	return c.Ticks > 2*c.MarginTicks
}
