// Package game adapts the life controller to the platform's frame loop.
// It owns the edit cursor, maps terminal cells to board coordinates and
// draws the board, HUD and paused overlay into a core.Screen.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

// Options configures a board.
type Options struct {
	Config   config.LifeConfig
	Patterns *patterns.Library // Patterns cycled by NextPattern, may be nil
	Start    *patterns.Pattern // Pattern loaded on Reset, nil for an empty board
	Legend   []string          // Control lines shown under "Controls:" while paused
}

// DefaultLegend is used when Options.Legend is empty.
func DefaultLegend() []string {
	return []string{
		"space: run/pause  arrows: move  enter: toggle  click: toggle",
		"n: step  e: clear  r: random  p: next pattern",
		"+/-: speed  0: reset speed  ?: hide controls  esc/q: quit",
	}
}

// Game is a Game of Life board driven one frame at a time.
type Game struct {
	opts   Options
	legend []string
	ctl    *life.Controller
	rng    *rand.Rand
	frame  time.Duration

	screenW  int
	screenH  int
	tooSmall bool

	cursor   life.Point
	pattern  string // ID of the last pattern loaded, empty after random fill or clear
	showHelp bool

	total    uint64 // Generations computed this session, across clears
	bestPeak int

	notice       string
	noticeFrames int
	tickRate     int
}

// New creates a board. Reset must be called before Step or Render.
func New(opts Options) *Game {
	legend := opts.Legend
	if len(legend) == 0 {
		legend = DefaultLegend()
	}
	return &Game{
		opts:     opts,
		legend:   legend,
		showHelp: true,
	}
}

// Reset builds a fresh board sized to the screen and loads the start pattern.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(g.tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.total = 0
	g.bestPeak = 0
	g.notice = ""
	g.noticeFrames = 0
	g.pattern = ""

	g.ctl = g.newController()
	g.centerCursor()

	if g.opts.Start != nil {
		g.loadPattern(*g.opts.Start)
	}
	if !g.opts.Config.Start.Paused {
		g.ctl.TogglePause()
	}
}

// Resize rebuilds the board for a new screen size. Live cells keep their
// coordinates where they still fit; counters, pause state and delay carry over.
func (g *Game) Resize(w, h int) {
	if w == g.screenW && h == g.screenH {
		return
	}
	old := g.ctl
	g.screenW = w
	g.screenH = h
	g.ctl = g.newController()

	var live []life.Point
	v := old.View()
	for y := life.Border; y < v.Height()-life.Border; y++ {
		for x := life.Border; x < v.Width()-life.Border; x++ {
			if v.Get(x, y) == life.Alive {
				live = append(live, life.Point{X: x, Y: y})
			}
		}
	}
	//nolint:errcheck // A new controller is always paused
	g.ctl.Restore(live, old.Generation(), old.Peak())
	//nolint:errcheck // Speed commands never fail
	g.ctl.Apply(life.Command{Kind: life.CmdSetDelay, Delay: old.Delay()})
	if !old.IsPaused() {
		g.ctl.TogglePause()
	}
	if old.Done() {
		//nolint:errcheck // Quit never fails on a live controller
		g.ctl.Apply(life.Command{Kind: life.CmdQuit})
	}
	g.clampCursor()
}

// newController sizes a controller so the playable area fills the screen
// below the HUD. The border ring sits just outside the visible area.
func (g *Game) newController() *life.Controller {
	board := g.opts.Config.Board
	playW := max(g.screenW/max(board.CellWidth, 1), 0)
	playH := max(g.screenH-board.HUDHeight, 0)
	w := playW + 2*life.Border
	h := playH + 2*life.Border
	g.tooSmall = playW < 1 || playH < 1
	return life.NewController(w, h, g.opts.Config.Speed.ToSpeed())
}

// BoardSize returns the grid dimensions including the border ring.
func (g *Game) BoardSize() (w, h int) {
	v := g.ctl.View()
	return v.Width(), v.Height()
}

// Pattern returns the ID of the last pattern loaded.
func (g *Game) Pattern() string {
	return g.pattern
}

// Cursor returns the grid coordinate under the edit cursor.
func (g *Game) Cursor() life.Point {
	return g.cursor
}

// View returns read-only access to the current generation.
func (g *Game) View() life.View {
	return g.ctl.View()
}

// Delay returns the current delay between generations.
func (g *Game) Delay() time.Duration {
	return g.ctl.Delay()
}

// Step processes one frame of input and lets the clock advance the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.noticeFrames > 0 {
		g.noticeFrames--
		if g.noticeFrames == 0 {
			g.notice = ""
		}
	}

	for _, e := range in.Events {
		g.handleEvent(e)
	}

	advanced := g.ctl.Tick(g.frame)
	if advanced {
		g.total++
	}
	g.bestPeak = max(g.bestPeak, g.ctl.Peak())

	return core.StepResult{State: g.State(), Advanced: advanced}
}

// handleEvent translates one input event into controller commands.
func (g *Game) handleEvent(e core.Event) {
	switch e.Action {
	case core.ActionClick:
		if p, ok := g.ScreenToCell(e.X, e.Y); ok {
			g.cursor = p
			g.report(g.ctl.ToggleCell(p.X, p.Y))
		}
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	case core.ActionToggleCell:
		g.report(g.ctl.ToggleCell(g.cursor.X, g.cursor.Y))
	case core.ActionPause:
		g.ctl.TogglePause()
	case core.ActionClear:
		if g.report(g.ctl.Clear()) {
			g.pattern = ""
		}
	case core.ActionStep:
		if g.report(g.ctl.Step()) {
			g.total++
		}
	case core.ActionSpeedUp:
		g.report(g.ctl.Apply(life.Command{Kind: life.CmdSpeedUp}))
	case core.ActionSlowDown:
		g.report(g.ctl.Apply(life.Command{Kind: life.CmdSlowDown}))
	case core.ActionResetSpeed:
		g.report(g.ctl.Apply(life.Command{Kind: life.CmdResetSpeed}))
	case core.ActionRandomize:
		if g.report(g.ctl.Randomize(g.rng, g.opts.Config.Random.Density)) {
			g.pattern = ""
		}
	case core.ActionNextPattern:
		g.nextPattern()
	case core.ActionHelp:
		g.showHelp = !g.showHelp
	case core.ActionQuit:
		g.report(g.ctl.Apply(life.Command{Kind: life.CmdQuit}))
	}
}

// report turns a rejected command into a short on-screen notice.
// Returns true if err is nil.
func (g *Game) report(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, life.ErrNotPaused):
		g.setNotice("pause to edit")
	case errors.Is(err, life.ErrOutsidePlayfield):
		g.setNotice("outside the board")
	}
	return false
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeFrames = g.tickRate * 2
}

func (g *Game) nextPattern() {
	if g.opts.Patterns == nil {
		return
	}
	if !g.ctl.IsPaused() {
		g.report(life.ErrNotPaused)
		return
	}
	p, ok := g.opts.Patterns.Next(g.pattern)
	if !ok {
		return
	}
	g.loadPattern(p)
}

// loadPattern stamps p centered on the playable area.
func (g *Game) loadPattern(p patterns.Pattern) {
	v := g.ctl.View()
	if !g.report(g.ctl.Load(p.Centered(v.Width(), v.Height()))) {
		return
	}
	g.pattern = p.ID
	if !p.Fits(v.Width(), v.Height()) {
		g.setNotice(fmt.Sprintf("%s is clipped, enlarge the terminal", p.Name))
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X += dx
	g.cursor.Y += dy
	g.clampCursor()
}

func (g *Game) clampCursor() {
	area := g.playable()
	if area.Empty() {
		g.cursor = life.Point{X: life.Border, Y: life.Border}
		return
	}
	g.cursor.X, g.cursor.Y = area.ClampPoint(g.cursor.X, g.cursor.Y)
}

// playable is the interior of the grid in grid coordinates.
func (g *Game) playable() core.Rect {
	v := g.ctl.View()
	return core.NewRect(0, 0, v.Width(), v.Height()).Inset(life.Border)
}

func (g *Game) centerCursor() {
	v := g.ctl.View()
	g.cursor = life.Point{X: v.Width() / 2, Y: v.Height() / 2}
	g.clampCursor()
}

// ScreenToCell maps a terminal cell to the grid coordinate drawn there.
// Returns false for the HUD rows and anything outside the playable area.
func (g *Game) ScreenToCell(sx, sy int) (life.Point, bool) {
	board := g.opts.Config.Board
	if sx < 0 || sy < board.HUDHeight {
		return life.Point{}, false
	}
	p := life.Point{
		X: sx/max(board.CellWidth, 1) + life.Border,
		Y: sy - board.HUDHeight + life.Border,
	}
	if !g.playable().Contains(p.X, p.Y) {
		return life.Point{}, false
	}
	return p, true
}

// cellToScreen returns the top-left terminal cell where grid (x, y) is drawn.
func (g *Game) cellToScreen(x, y int) (sx, sy int) {
	board := g.opts.Config.Board
	return (x - life.Border) * board.CellWidth, board.HUDHeight + y - life.Border
}

// State returns the current board status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:     g.ctl.IsPaused(),
		Quit:       g.ctl.Done(),
		Generation: g.ctl.Generation(),
		Population: g.ctl.Population(),
		Peak:       g.ctl.Peak(),
		Total:      g.total,
		BestPeak:   max(g.bestPeak, g.ctl.Peak()),
	}
}
