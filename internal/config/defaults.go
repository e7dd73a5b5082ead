package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default board configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Speed: SpeedConfig{
			MinMs:     10,
			MaxMs:     1000,
			StepMs:    10,
			DefaultMs: 50,
			Fixed:     false,
			FixedMs:   100,
		},
		Board: BoardConfig{
			CellWidth:  2,
			AliveGlyph: "██",
			DeadGlyph:  "· ",
			AliveColor: "bright_blue",
			DeadColor:  "gray",
			HUDHeight:  1,
		},
		Random: RandomConfig{
			Density: 0.25,
		},
		Start: StartConfig{
			Pattern: "",
			Paused:  true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLifeYAML
}
