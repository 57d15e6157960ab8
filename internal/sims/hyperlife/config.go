package hyperlife

import (
	"strconv"

	"hyperlife/internal/pattern"
)

// Config controls a hyperlife simulation.
type Config struct {
	Ticks       int
	MarginTicks int

	// Pattern is the initial plane. When it has no rows a random
	// Width x Height pattern is generated from Seed.
	Pattern pattern.Pattern
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultConfig returns the reference configuration with no pattern.
func DefaultConfig() Config {
	return Config{
		Ticks:       6,
		MarginTicks: 3,
		Width:       5,
		Height:      5,
		Density:     0.35,
		Seed:        42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values are ignored. The "pattern" key accepts rows separated by
// newlines or '/'.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ticks = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MarginTicks = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if p, err := pattern.ParseString(v); err == nil {
			c.Pattern = p
		}
	}
	return c
}
