package core

import "testing"

func TestRectInset(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		n     int
		want  Rect
		empty bool
	}{
		{"grid interior", NewRect(0, 0, 12, 8), 1, NewRect(1, 1, 10, 6), false},
		{"smallest playable", NewRect(0, 0, 3, 3), 1, NewRect(1, 1, 1, 1), false},
		{"degenerate", NewRect(0, 0, 2, 5), 1, NewRect(1, 1, 0, 3), true},
		{"zero inset", NewRect(4, 2, 6, 3), 0, NewRect(4, 2, 6, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Inset(tc.n)
			if got != tc.want {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.want)
			}
			if got.Empty() != tc.empty {
				t.Errorf("Empty() = %v, expected %v", got.Empty(), tc.empty)
			}
		})
	}
}

func TestRectContainsInterior(t *testing.T) {
	interior := NewRect(0, 0, 5, 5).Inset(1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 2, 2, true},
		{"first interior cell", 1, 1, true},
		{"last interior cell", 3, 3, true},
		{"top border", 2, 0, false},
		{"right border", 4, 2, false},
		{"outside", 9, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := interior.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
	if interior.Right() != 4 || interior.Bottom() != 4 {
		t.Errorf("Right/Bottom = %d/%d, expected 4/4", interior.Right(), interior.Bottom())
	}
}

func TestRectClampPoint(t *testing.T) {
	r := NewRect(1, 1, 10, 6)

	tests := []struct {
		x, y, wantX, wantY int
	}{
		{5, 3, 5, 3},
		{0, 0, 1, 1},
		{20, 20, 10, 6},
		{-3, 4, 1, 4},
	}

	for _, tc := range tests {
		x, y := r.ClampPoint(tc.x, tc.y)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("ClampPoint(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestClampSpeedSteps(t *testing.T) {
	// Delay steps in milliseconds against the default bounds.
	for _, tc := range []struct{ val, want int }{{5, 10}, {50, 50}, {1010, 1000}} {
		if got := Clamp(tc.val, 10, 1000); got != tc.want {
			t.Errorf("Clamp(%d, 10, 1000) = %d, expected %d", tc.val, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"bright_blue", ColorBrightBlue, true},
		{"  Yellow ", ColorYellow, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}
