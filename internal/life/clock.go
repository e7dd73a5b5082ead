package life

import (
	"fmt"
	"time"
)

// Speed describes the bounds of the inter-generation delay.
type Speed struct {
	Min     time.Duration
	Max     time.Duration
	Step    time.Duration
	Default time.Duration
	Fixed   bool // delay pinned to Default, speed commands ignored
}

// DefaultSpeed returns the adjustable 10ms..1s range starting at 50ms.
func DefaultSpeed() Speed {
	return Speed{
		Min:     10 * time.Millisecond,
		Max:     time.Second,
		Step:    10 * time.Millisecond,
		Default: 50 * time.Millisecond,
	}
}

// FixedSpeed returns a non-adjustable 100ms delay.
func FixedSpeed() Speed {
	return Speed{
		Min:     100 * time.Millisecond,
		Max:     100 * time.Millisecond,
		Step:    0,
		Default: 100 * time.Millisecond,
		Fixed:   true,
	}
}

// Validate checks that the speed range is usable.
func (s Speed) Validate() error {
	if s.Min <= 0 {
		return fmt.Errorf("life: minimum delay must be positive, got %v", s.Min)
	}
	if s.Min > s.Max {
		return fmt.Errorf("life: minimum delay %v exceeds maximum %v", s.Min, s.Max)
	}
	if s.Default < s.Min || s.Default > s.Max {
		return fmt.Errorf("life: default delay %v outside [%v, %v]", s.Default, s.Min, s.Max)
	}
	if !s.Fixed && s.Step <= 0 {
		return fmt.Errorf("life: delay step must be positive, got %v", s.Step)
	}
	return nil
}

// Clock holds the paused flag and the current delay between generations.
// It starts paused at the default delay.
type Clock struct {
	speed  Speed
	delay  time.Duration
	paused bool
}

// NewClock creates a paused clock at speed.Default.
func NewClock(speed Speed) *Clock {
	return &Clock{speed: speed, delay: speed.Default, paused: true}
}

// Delay returns the current delay between generations.
func (c *Clock) Delay() time.Duration { return c.delay }

// Speed returns the configured bounds.
func (c *Clock) Speed() Speed { return c.speed }

// Paused reports whether the simulation is paused.
func (c *Clock) Paused() bool { return c.paused }

// TogglePause flips between paused and running.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// SpeedUp shortens the delay by one step, floored at the minimum.
func (c *Clock) SpeedUp() {
	if c.speed.Fixed {
		return
	}
	c.delay = max(c.delay-c.speed.Step, c.speed.Min)
}

// SlowDown lengthens the delay by one step, capped at the maximum.
func (c *Clock) SlowDown() {
	if c.speed.Fixed {
		return
	}
	c.delay = min(c.delay+c.speed.Step, c.speed.Max)
}

// SetDelay sets the delay, clamped to [Min, Max].
func (c *Clock) SetDelay(d time.Duration) {
	if c.speed.Fixed {
		return
	}
	c.delay = min(max(d, c.speed.Min), c.speed.Max)
}

// ResetSpeed restores the default delay.
func (c *Clock) ResetSpeed() {
	c.delay = c.speed.Default
}
