package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"enter toggles", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggleCell},
		{"x toggles", runeKey('x'), core.ActionToggleCell},
		{"n steps", runeKey('n'), core.ActionStep},
		{"e clears", runeKey('e'), core.ActionClear},
		{"r randomizes", runeKey('r'), core.ActionRandomize},
		{"p next pattern", runeKey('p'), core.ActionNextPattern},
		{"plus speeds up", runeKey('+'), core.ActionSpeedUp},
		{"equals speeds up", runeKey('='), core.ActionSpeedUp},
		{"minus slows down", runeKey('-'), core.ActionSlowDown},
		{"zero resets speed", runeKey('0'), core.ActionResetSpeed},
		{"question mark help", runeKey('?'), core.ActionHelp},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestLegend(t *testing.T) {
	keys := DefaultKeyMap()
	lines := keys.Legend()

	if len(lines) != len(keys.FullHelp()) {
		t.Fatalf("Legend() has %d lines, expected %d", len(lines), len(keys.FullHelp()))
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"space: run/pause", "n: step", "esc/q: quit"} {
		if !strings.Contains(joined, want) {
			t.Errorf("legend missing %q:\n%s", want, joined)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
