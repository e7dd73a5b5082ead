package game

import "github.com/vovakirdan/tui-life/internal/life"

// StateType names the mode the board is in.
type StateType string

const (
	StateRunning  StateType = "running"
	StatePaused   StateType = "paused"
	StateTooSmall StateType = "too_small"
	StateQuit     StateType = "quit"
)

// Snapshot captures the board for determinism testing.
type Snapshot struct {
	State      StateType
	Generation uint64
	Population int
	DelayMs    int64
	Cursor     life.Point
	Pattern    string
	Cells      string // '#' alive, '.' dead, rows separated by '\n'
}

// Snapshot returns the current board snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.ctl.Done():
		state = StateQuit
	case g.tooSmall:
		state = StateTooSmall
	case g.ctl.IsPaused():
		state = StatePaused
	}

	cells := ""
	if grid, ok := g.ctl.View().(*life.Grid); ok {
		cells = grid.String()
	}

	return Snapshot{
		State:      state,
		Generation: g.ctl.Generation(),
		Population: g.ctl.Population(),
		DelayMs:    g.ctl.Delay().Milliseconds(),
		Cursor:     g.cursor,
		Pattern:    g.pattern,
		Cells:      cells,
	}
}
