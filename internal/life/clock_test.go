package life

import (
	"testing"
	"time"
)

func TestClockSpeedClamps(t *testing.T) {
	speed := DefaultSpeed()

	t.Run("speed up floors at minimum", func(t *testing.T) {
		c := NewClock(speed)
		for range 500 {
			c.SpeedUp()
			if c.Delay() < speed.Min {
				t.Fatalf("Delay() = %v dropped below minimum", c.Delay())
			}
		}
		if c.Delay() != speed.Min {
			t.Errorf("Delay() = %v, expected exactly %v", c.Delay(), speed.Min)
		}
	})

	t.Run("slow down caps at maximum", func(t *testing.T) {
		c := NewClock(speed)
		for range 500 {
			c.SlowDown()
			if c.Delay() > speed.Max {
				t.Fatalf("Delay() = %v exceeded maximum", c.Delay())
			}
		}
		if c.Delay() != speed.Max {
			t.Errorf("Delay() = %v, expected exactly %v", c.Delay(), speed.Max)
		}
	})

	t.Run("reset restores default", func(t *testing.T) {
		c := NewClock(speed)
		for _, adjust := range []func(){c.SpeedUp, c.SlowDown, c.SlowDown, c.SlowDown} {
			adjust()
			c.ResetSpeed()
			if c.Delay() != speed.Default {
				t.Fatalf("Delay() = %v after reset, expected %v", c.Delay(), speed.Default)
			}
		}
	})
}

func TestClockStepSize(t *testing.T) {
	c := NewClock(DefaultSpeed())

	c.SpeedUp()
	if c.Delay() != 40*time.Millisecond {
		t.Errorf("Delay() after SpeedUp = %v, expected 40ms", c.Delay())
	}
	c.SlowDown()
	c.SlowDown()
	if c.Delay() != 60*time.Millisecond {
		t.Errorf("Delay() after two SlowDown = %v, expected 60ms", c.Delay())
	}
}

func TestClockFixedSpeed(t *testing.T) {
	c := NewClock(FixedSpeed())

	c.SpeedUp()
	c.SlowDown()
	c.ResetSpeed()
	if c.Delay() != 100*time.Millisecond {
		t.Errorf("fixed clock Delay() = %v, expected 100ms", c.Delay())
	}
}

func TestSpeedValidate(t *testing.T) {
	tests := []struct {
		name    string
		speed   Speed
		wantErr bool
	}{
		{"default", DefaultSpeed(), false},
		{"fixed", FixedSpeed(), false},
		{"zero minimum", Speed{Min: 0, Max: time.Second, Step: time.Millisecond, Default: time.Millisecond}, true},
		{"inverted range", Speed{Min: time.Second, Max: time.Millisecond, Step: time.Millisecond, Default: time.Second}, true},
		{"default above max", Speed{Min: time.Millisecond, Max: 10 * time.Millisecond, Step: time.Millisecond, Default: time.Second}, true},
		{"zero step", Speed{Min: time.Millisecond, Max: time.Second, Default: 5 * time.Millisecond}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.speed.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestClockSetDelay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"inside range", 300 * time.Millisecond, 300 * time.Millisecond},
		{"below minimum", time.Millisecond, 10 * time.Millisecond},
		{"above maximum", time.Minute, time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(DefaultSpeed())
			c.SetDelay(tc.in)
			if c.Delay() != tc.want {
				t.Errorf("SetDelay(%v) gave %v, expected %v", tc.in, c.Delay(), tc.want)
			}
		})
	}

	fixed := NewClock(FixedSpeed())
	fixed.SetDelay(20 * time.Millisecond)
	if fixed.Delay() != 100*time.Millisecond {
		t.Errorf("fixed clock accepted SetDelay: %v", fixed.Delay())
	}
}
