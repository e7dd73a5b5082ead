package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(ActionToggleCell)
	f.Click(4, 7)

	want := []Event{
		{Action: ActionPause},
		{Action: ActionToggleCell},
		{Action: ActionClick, X: 4, Y: 7},
	}
	if len(f.Events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), f.Events)
	}
	for i, e := range want {
		if f.Events[i] != e {
			t.Errorf("event %d = %+v, expected %+v", i, f.Events[i], e)
		}
	}
	if !f.Has(ActionToggleCell) || !f.Has(ActionClick) || f.Has(ActionClear) {
		t.Error("Has() reported wrong membership")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame not empty after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionPause, "Pause"},
		{ActionSpeedUp, "SpeedUp"},
		{ActionQuit, "Quit"},
		{ActionClick, "Click"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
