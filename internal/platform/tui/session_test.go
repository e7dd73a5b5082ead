package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func testSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	lib, err := patterns.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: 1}
	return NewSessionModel(config.DefaultLifeConfig(), lib, store, log.New(io.Discard), cfg)
}

func sendSession(m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestMenuItems(t *testing.T) {
	lib, _ := patterns.Builtin()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 30}

	withRuns := NewMenuModel(lib, true, cfg)
	// Empty, random, every pattern, history.
	if want := 2 + len(lib.IDs()) + 1; len(withRuns.items) != want {
		t.Errorf("menu has %d items, expected %d", len(withRuns.items), want)
	}
	if withRuns.items[len(withRuns.items)-1].Kind != MenuRuns {
		t.Error("run history should be the last item")
	}

	noRuns := NewMenuModel(nil, false, cfg)
	if len(noRuns.items) != 2 {
		t.Errorf("menu without patterns or runs has %d items", len(noRuns.items))
	}
}

func TestMenuScrollsToCursor(t *testing.T) {
	lib, _ := patterns.Builtin()
	m := NewMenuModel(lib, true, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	for range len(m.items) {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Fatalf("cursor = %d, expected last item", m.cursor)
	}
	if !strings.Contains(m.View(), "Run history") {
		t.Error("selected item scrolled out of view")
	}
}

func TestSessionBoardAndBack(t *testing.T) {
	m := testSession(t, nil)

	// First item is the empty board.
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenBoard {
		t.Fatalf("current = %v, expected board", m.current)
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("board view missing paused overlay")
	}

	// Quitting the board returns to the menu instead of ending the session.
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEscape}, TickMsg{})
	if m.current != screenMenu {
		t.Fatalf("current = %v, expected menu after quitting the board", m.current)
	}

	_, cmd := sendSession(m, runeKey('q'))
	if cmd == nil {
		t.Error("quitting the menu should end the session")
	}
}

func TestSessionRandomBoard(t *testing.T) {
	m := testSession(t, nil)

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenBoard {
		t.Fatalf("current = %v, expected board", m.current)
	}
	m, _ = sendSession(m, TickMsg{})
	if m.board.State().Population == 0 {
		t.Error("random board is empty")
	}
}

func TestSessionRunHistory(t *testing.T) {
	store := testStore(t)
	store.SaveRun(storage.Run{Width: 10, Height: 10, Generations: 77, Pattern: "toad"})
	m := testSession(t, store)

	last := len(m.menu.items) - 1
	for range last {
		m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenRuns {
		t.Fatalf("current = %v, expected run history", m.current)
	}
	if !strings.Contains(m.View(), "toad") {
		t.Errorf("run history missing saved run:\n%s", m.View())
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.current != screenMenu {
		t.Errorf("current = %v, expected menu after back", m.current)
	}
}

func TestRunsModelSwitchView(t *testing.T) {
	store := testStore(t)
	for _, gens := range []uint64{5, 50, 500} {
		store.SaveRun(storage.Run{Width: 10, Height: 10, Generations: gens})
	}

	m := NewRunsModel(store, RunsRecent, 100, 30)
	if len(m.runs) != 3 {
		t.Fatalf("loaded %d runs, expected 3", len(m.runs))
	}
	if m.summary == nil || m.summary.TotalGenerations != 555 {
		t.Errorf("unexpected summary %+v", m.summary)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.view != RunsLongest {
		t.Fatalf("view = %v, expected Longest", m.view)
	}
	if m.runs[0].Generations != 500 {
		t.Errorf("longest view starts with %d generations", m.runs[0].Generations)
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{{Width: 12, Height: 8, Generations: 9, PeakPopulation: 4}})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "1" || row[1] != "9" || row[4] != "12x8" || row[5] != "-" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestRunsModelWithoutStore(t *testing.T) {
	m := NewRunsModel(nil, RunsRecent, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected unavailable message without a store")
	}
}
