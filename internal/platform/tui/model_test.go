package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testModel(t *testing.T, store *storage.Store, start string) Model {
	t.Helper()
	opts := game.Options{Config: config.DefaultLifeConfig(), Legend: DefaultKeyMap().Legend()}
	if start != "" {
		lib, err := patterns.Builtin()
		if err != nil {
			t.Fatalf("Builtin() failed: %v", err)
		}
		p, _ := lib.Get(start)
		opts.Start = &p
	}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 21, TickRate: 60, Seed: 7}
	g := game.New(opts)
	g.Reset(cfg)
	return NewModel(g, store, log.New(io.Discard), cfg)
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestModelKeysReachBoard(t *testing.T) {
	m := testModel(t, nil, "")

	m, _ = send(m, runeKey('x'), tick())
	if m.State().Population != 1 {
		t.Errorf("Population = %d after toggle", m.State().Population)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tick())
	if m.State().Paused {
		t.Error("space should start the simulation")
	}
}

func TestModelMouseClick(t *testing.T) {
	m := testModel(t, nil, "")

	click := tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m, _ = send(m, click, release, tick())

	if m.State().Population != 1 {
		t.Errorf("Population = %d, expected one toggle per press", m.State().Population)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := testStore(t)
	m := testModel(t, store, "blinker")

	m, _ = send(m, runeKey('n'), tick(), runeKey('n'), tick(), runeKey('n'), tick())
	m, cmd := send(m, runeKey('q'), tick())

	if !m.Done() {
		t.Fatal("model should be done after quit")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
	if !m.RunSaved() {
		t.Fatal("run was not saved")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Generations != 3 || runs[0].Pattern != "blinker" || runs[0].PeakPopulation != 3 {
		t.Errorf("unexpected run %+v", runs[0])
	}
	if runs[0].Width != 22 || runs[0].Height != 22 {
		t.Errorf("board = %dx%d, expected 22x22", runs[0].Width, runs[0].Height)
	}
}

func TestModelQuitWithoutGenerationsSkipsSave(t *testing.T) {
	store := testStore(t)
	m := testModel(t, store, "glider")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEscape}, tick())
	if !m.Done() || m.RunSaved() {
		t.Errorf("done=%v saved=%v, expected quit without save", m.Done(), m.RunSaved())
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestModelResize(t *testing.T) {
	m := testModel(t, nil, "")

	m, _ = send(m, tea.WindowSizeMsg{Width: 20, Height: 11}, tick())
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 11 {
		t.Errorf("view has %d rows, expected 11", got)
	}
	if !strings.Contains(view, "Paused") {
		t.Error("paused overlay missing from view")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, want := range []string{"ab", "xyz"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, expected to contain %q", i, lines[i], want)
		}
		if w := lipgloss.Width(lines[i]); w != 6 {
			t.Errorf("line %d is %d cells wide, expected 6", i, w)
		}
	}
}

func TestPaletteRendersRunsOnPlainOutput(t *testing.T) {
	// A renderer on a non-terminal writer has no color profile.
	p := NewPalette(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(5, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "c", core.Color(200)) // unknown colors render plain
	s.DrawTextColor(0, 1, "xy", core.ColorGray)

	if got, want := p.Render(s), "abc  \nxy   "; got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}
