package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Model is the Bubble Tea model for running a board.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	palette    *Palette
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      core.GameState
	started    time.Time
	quitting   bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given board.
// store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    defaultPalette,
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
// The board must already be Reset by the caller.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.inputFrame.Set(m.keys.MapKey(msg))
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one board frame with the input collected since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	if m.state.Quit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the session once, if anything was simulated.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.state.Total == 0 {
		return
	}
	m.runSaved = true

	w, h := m.game.BoardSize()
	run := storage.Run{
		Pattern:         m.game.Pattern(),
		Width:           w,
		Height:          h,
		Generations:     m.state.Total,
		PeakPopulation:  m.state.BestPeak,
		FinalPopulation: m.state.Population,
		Duration:        time.Since(m.started),
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "generations", run.Generations, "peak", run.PeakPopulation)
}

// State returns the board status after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// Done reports whether the board has quit.
func (m Model) Done() bool {
	return m.quitting
}

// RunSaved reports whether the session was recorded.
func (m Model) RunSaved() bool {
	return m.runSaved
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// Run starts the Bubble Tea program for the given board.
func Run(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, logger, cfg)
	g.Reset(model.config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
