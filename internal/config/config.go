// Package config provides YAML-based configuration loading for the
// Game of Life board.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// LifeConfig contains all configuration for the board.
type LifeConfig struct {
	Speed  SpeedConfig  `yaml:"speed"`
	Board  BoardConfig  `yaml:"board"`
	Random RandomConfig `yaml:"random"`
	Start  StartConfig  `yaml:"start"`
}

// SpeedConfig defines the inter-generation delay bounds in milliseconds.
type SpeedConfig struct {
	MinMs     int  `yaml:"min_ms"`
	MaxMs     int  `yaml:"max_ms"`
	StepMs    int  `yaml:"step_ms"`
	DefaultMs int  `yaml:"default_ms"`
	Fixed     bool `yaml:"fixed"`
	FixedMs   int  `yaml:"fixed_ms"`
}

// BoardConfig defines how cells are drawn.
type BoardConfig struct {
	CellWidth  int    `yaml:"cell_width"` // Terminal columns per cell
	AliveGlyph string `yaml:"alive_glyph"`
	DeadGlyph  string `yaml:"dead_glyph"`
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
	HUDHeight  int    `yaml:"hud_height"` // Status lines above the board
}

// RandomConfig defines random fill parameters.
type RandomConfig struct {
	Density float64 `yaml:"density"` // Probability a playable cell starts alive
}

// StartConfig defines the initial board.
type StartConfig struct {
	Pattern string `yaml:"pattern"` // Built-in pattern to load, empty for a blank board
	Paused  bool   `yaml:"paused"`
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ToSpeed converts the millisecond settings to controller speed bounds.
func (s SpeedConfig) ToSpeed() life.Speed {
	if s.Fixed {
		return life.Speed{
			Min:     ms(s.FixedMs),
			Max:     ms(s.FixedMs),
			Default: ms(s.FixedMs),
			Fixed:   true,
		}
	}
	return life.Speed{
		Min:     ms(s.MinMs),
		Max:     ms(s.MaxMs),
		Step:    ms(s.StepMs),
		Default: ms(s.DefaultMs),
	}
}

// AliveColorValue returns the parsed alive color, falling back to the default.
func (b BoardConfig) AliveColorValue() core.Color {
	c, _ := core.ParseColor(b.AliveColor)
	return c
}

// DeadColorValue returns the parsed dead color, falling back to the default.
func (b BoardConfig) DeadColorValue() core.Color {
	c, _ := core.ParseColor(b.DeadColor)
	return c
}

// Validate reports the first unusable setting.
func (c LifeConfig) Validate() error {
	if err := c.Speed.ToSpeed().Validate(); err != nil {
		return fmt.Errorf("config: speed: %w", err)
	}
	if c.Board.CellWidth < 1 {
		return fmt.Errorf("config: board.cell_width must be at least 1, got %d", c.Board.CellWidth)
	}
	for name, glyph := range map[string]string{
		"alive_glyph": c.Board.AliveGlyph,
		"dead_glyph":  c.Board.DeadGlyph,
	} {
		if n := utf8.RuneCountInString(glyph); n != c.Board.CellWidth {
			return fmt.Errorf("config: board.%s %q is %d columns, cell_width is %d", name, glyph, n, c.Board.CellWidth)
		}
	}
	if _, ok := core.ParseColor(c.Board.AliveColor); !ok {
		return fmt.Errorf("config: unknown board.alive_color %q", c.Board.AliveColor)
	}
	if _, ok := core.ParseColor(c.Board.DeadColor); !ok {
		return fmt.Errorf("config: unknown board.dead_color %q", c.Board.DeadColor)
	}
	if c.Board.HUDHeight < 0 {
		return fmt.Errorf("config: board.hud_height must not be negative, got %d", c.Board.HUDHeight)
	}
	if c.Random.Density < 0 || c.Random.Density > 1 {
		return fmt.Errorf("config: random.density %v outside [0, 1]", c.Random.Density)
	}
	return nil
}
