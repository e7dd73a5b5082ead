package life

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrNotPaused is returned for board edits issued while running.
	ErrNotPaused = errors.New("life: simulation is running")

	// ErrOutsidePlayfield is returned when a command addresses the border
	// ring or a coordinate outside the grid.
	ErrOutsidePlayfield = errors.New("life: coordinate outside playfield")

	// ErrQuit is returned by Apply once Quit has been issued.
	ErrQuit = errors.New("life: controller has quit")
)

// CommandKind identifies a discrete command from the input layer.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdTogglePause
	CmdToggleCell // X, Y address the cell
	CmdClear
	CmdStep
	CmdSpeedUp
	CmdSlowDown
	CmdResetSpeed
	CmdSetDelay // Delay carries the requested value
	CmdQuit
)

// String returns a human-readable name for the command.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdTogglePause:
		return "TogglePause"
	case CmdToggleCell:
		return "ToggleCell"
	case CmdClear:
		return "Clear"
	case CmdStep:
		return "Step"
	case CmdSpeedUp:
		return "SpeedUp"
	case CmdSlowDown:
		return "SlowDown"
	case CmdResetSpeed:
		return "ResetSpeed"
	case CmdSetDelay:
		return "SetDelay"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one request from the input layer.
type Command struct {
	Kind  CommandKind
	X, Y  int
	Delay time.Duration
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Controller owns the board and the clock. The host calls Tick once per
// frame and Apply for each command; both run on the host's goroutine and
// must not be called concurrently.
type Controller struct {
	engine     *Engine
	clock      *Clock
	elapsed    time.Duration
	generation uint64
	peak       int
	quit       bool
}

// NewController creates a paused controller over an empty w x h board.
func NewController(w, h int, speed Speed) *Controller {
	return &Controller{
		engine: NewEngine(w, h),
		clock:  NewClock(speed),
	}
}

// View returns read-only access to the current generation.
func (c *Controller) View() View {
	return c.engine.Grid()
}

// IsPaused reports whether generations are suspended.
func (c *Controller) IsPaused() bool { return c.clock.Paused() }

// Delay returns the current delay between generations.
func (c *Controller) Delay() time.Duration { return c.clock.Delay() }

// Speed returns the delay bounds in effect.
func (c *Controller) Speed() Speed { return c.clock.Speed() }

// Generation returns the number of generations since the board was last
// cleared or reloaded.
func (c *Controller) Generation() uint64 { return c.generation }

// Population returns the number of live cells on the board.
func (c *Controller) Population() int { return c.engine.Grid().Population() }

// Peak returns the highest population seen since the board was last
// cleared or reloaded.
func (c *Controller) Peak() int { return c.peak }

// Done reports whether Quit has been issued.
func (c *Controller) Done() bool { return c.quit }

// Tick accounts for elapsed wall time and advances one generation when
// running and at least Delay has passed since the last advance.
// Returns true if a generation was computed.
func (c *Controller) Tick(elapsed time.Duration) bool {
	if c.quit || c.clock.Paused() {
		return false
	}
	c.elapsed += elapsed
	if c.elapsed < c.clock.Delay() {
		return false
	}
	c.elapsed = 0
	c.advance()
	return true
}

// Apply executes a command. Board edits while running return ErrNotPaused
// and leave the board untouched; speed saturation is silent.
func (c *Controller) Apply(cmd Command) error {
	if c.quit {
		return ErrQuit
	}
	switch cmd.Kind {
	case CmdTogglePause:
		c.TogglePause()
	case CmdToggleCell:
		return c.ToggleCell(cmd.X, cmd.Y)
	case CmdClear:
		return c.Clear()
	case CmdStep:
		return c.Step()
	case CmdSpeedUp:
		c.clock.SpeedUp()
	case CmdSlowDown:
		c.clock.SlowDown()
	case CmdResetSpeed:
		c.clock.ResetSpeed()
	case CmdSetDelay:
		c.clock.SetDelay(cmd.Delay)
	case CmdQuit:
		c.quit = true
	}
	return nil
}

// TogglePause flips between paused and running. The elapsed-time
// accumulator restarts so resuming waits a full delay.
func (c *Controller) TogglePause() {
	c.clock.TogglePause()
	c.elapsed = 0
}

// ToggleCell flips an interior cell. Only allowed while paused.
func (c *Controller) ToggleCell(x, y int) error {
	if !c.clock.Paused() {
		return ErrNotPaused
	}
	g := c.engine.Grid()
	if !g.Interior(x, y) {
		return ErrOutsidePlayfield
	}
	g.Toggle(x, y)
	c.peak = max(c.peak, g.Population())
	return nil
}

// Clear kills every cell and resets the generation counter.
// Only allowed while paused.
func (c *Controller) Clear() error {
	if !c.clock.Paused() {
		return ErrNotPaused
	}
	c.engine.Grid().Clear()
	c.resetCounters()
	return nil
}

// Step advances exactly one generation. Only allowed while paused.
func (c *Controller) Step() error {
	if !c.clock.Paused() {
		return ErrNotPaused
	}
	c.advance()
	return nil
}

// Randomize replaces the board with random live cells in the playable
// area, each alive with probability density. Only allowed while paused.
func (c *Controller) Randomize(rng *rand.Rand, density float64) error {
	if !c.clock.Paused() {
		return ErrNotPaused
	}
	g := c.engine.Grid()
	g.Clear()
	for y := Border; y < g.Height()-Border; y++ {
		for x := Border; x < g.Width()-Border; x++ {
			if rng.Float64() < density {
				g.Set(x, y, Alive)
			}
		}
	}
	c.resetCounters()
	return nil
}

// Load replaces the board with the given live cells. Points outside the
// playable area are dropped. Only allowed while paused.
func (c *Controller) Load(points []Point) error {
	if !c.clock.Paused() {
		return ErrNotPaused
	}
	g := c.engine.Grid()
	g.Clear()
	for _, p := range points {
		if g.Interior(p.X, p.Y) {
			g.Set(p.X, p.Y, Alive)
		}
	}
	c.resetCounters()
	return nil
}

// Restore loads points like Load and then resumes the generation and peak
// counters, so a board rebuilt at a new size keeps its history.
func (c *Controller) Restore(points []Point, generation uint64, peak int) error {
	if err := c.Load(points); err != nil {
		return err
	}
	c.generation = generation
	c.peak = max(c.peak, peak)
	return nil
}

func (c *Controller) advance() {
	c.engine.Advance()
	c.generation++
	c.peak = max(c.peak, c.engine.Grid().Population())
}

func (c *Controller) resetCounters() {
	c.generation = 0
	c.peak = c.engine.Grid().Population()
}
