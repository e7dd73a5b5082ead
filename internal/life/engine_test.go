package life

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		cell      Cell
		neighbors int
		expected  Cell
	}{
		{"underpopulation 0", Alive, 0, Dead},
		{"underpopulation 1", Alive, 1, Dead},
		{"survival 2", Alive, 2, Alive},
		{"survival 3", Alive, 3, Alive},
		{"overpopulation 4", Alive, 4, Dead},
		{"overpopulation 8", Alive, 8, Dead},
		{"reproduction 3", Dead, 3, Alive},
		{"dead stays dead 2", Dead, 2, Dead},
		{"dead stays dead 4", Dead, 4, Dead},
		{"dead stays dead 0", Dead, 0, Dead},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextState(tc.cell, tc.neighbors); got != tc.expected {
				t.Errorf("NextState(%v, %d) = %v, expected %v", tc.cell, tc.neighbors, got, tc.expected)
			}
		})
	}
}

// gridFrom builds a grid from rows of '#' and '.'.
func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, y, Alive)
			}
		}
	}
	return g
}

func TestAdvanceRules(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		after  []string
	}{
		{
			name: "lone cell dies",
			before: []string{
				".....",
				".....",
				"..#..",
				".....",
				".....",
			},
			after: []string{
				".....",
				".....",
				".....",
				".....",
				".....",
			},
		},
		{
			name: "crowded center dies, corners of plus are born",
			before: []string{
				".....",
				"..#..",
				".###.",
				"..#..",
				".....",
			},
			after: []string{
				".....",
				".###.",
				".#.#.",
				".###.",
				".....",
			},
		},
		{
			name: "birth with exactly three",
			before: []string{
				".....",
				".#.#.",
				".....",
				"..#..",
				".....",
			},
			after: []string{
				".....",
				".....",
				"..#..",
				".....",
				".....",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := Advance(gridFrom(tc.before...))
			want := gridFrom(tc.after...)
			if !next.Equal(want) {
				t.Errorf("Advance produced\n%s\nexpected\n%s", next, want)
			}
		})
	}
}

func TestAdvanceBlockIsStill(t *testing.T) {
	g := gridFrom(
		"......",
		"......",
		"..##..",
		"..##..",
		"......",
		"......",
	)

	next := Advance(g)
	if !next.Equal(g) {
		t.Errorf("block changed after Advance:\n%s", next)
	}
}

func TestAdvanceBlinker(t *testing.T) {
	horizontal := gridFrom(
		".......",
		".......",
		".......",
		"..###..",
		".......",
		".......",
		".......",
	)
	vertical := gridFrom(
		".......",
		".......",
		"...#...",
		"...#...",
		"...#...",
		".......",
		".......",
	)

	first := Advance(horizontal)
	if !first.Equal(vertical) {
		t.Fatalf("first generation:\n%s\nexpected vertical blinker", first)
	}
	second := Advance(first)
	if !second.Equal(horizontal) {
		t.Fatalf("second generation:\n%s\nexpected horizontal blinker", second)
	}
}

func TestAdvanceDoesNotMutateCurrent(t *testing.T) {
	g := gridFrom(
		".......",
		"..#....",
		"...#...",
		".###...",
		".......",
		".......",
	)
	before := g.Clone()

	Advance(g)
	if !g.Equal(before) {
		t.Error("Advance modified its input grid")
	}
}

func TestAdvanceBorderStaysDead(t *testing.T) {
	// A full interior would spawn cells on the frame if the border were evaluated.
	g := NewGrid(6, 5)
	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			g.Set(x, y, Alive)
		}
	}

	for gen := 0; gen < 5; gen++ {
		g = Advance(g)
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, 0) != Dead || g.Get(x, g.Height()-1) != Dead {
				t.Fatalf("generation %d: border cell in column %d is alive", gen+1, x)
			}
		}
		for y := 0; y < g.Height(); y++ {
			if g.Get(0, y) != Dead || g.Get(g.Width()-1, y) != Dead {
				t.Fatalf("generation %d: border cell in row %d is alive", gen+1, y)
			}
		}
	}
}

func TestAdvanceDegenerateIsNoop(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {2, 2}, {1, 7}, {7, 2}} {
		g := NewGrid(dims[0], dims[1])
		next := Advance(g)
		if next.Width() != g.Width() || next.Height() != g.Height() {
			t.Errorf("%dx%d: successor has dimensions %dx%d", dims[0], dims[1], next.Width(), next.Height())
		}
		if next.Population() != 0 {
			t.Errorf("%dx%d: successor has live cells", dims[0], dims[1])
		}
	}
}

func TestEngineSwapReusesBuffers(t *testing.T) {
	e := NewEngine(7, 7)
	a := e.Grid()
	a.Set(2, 3, Alive)
	a.Set(3, 3, Alive)
	a.Set(4, 3, Alive)

	e.Advance()
	b := e.Grid()
	if b == a {
		t.Fatal("Advance did not swap buffers")
	}
	if b.Get(3, 2) != Alive || b.Get(3, 4) != Alive || b.Get(2, 3) != Dead {
		t.Errorf("unexpected first generation:\n%s", b)
	}
	// The former current is now the cleared spare.
	if a.Population() != 0 {
		t.Errorf("spare buffer not cleared, population %d", a.Population())
	}

	e.Advance()
	if e.Grid() != a {
		t.Error("second Advance did not reuse the original buffer")
	}
	if e.Grid().Get(2, 3) != Alive || e.Grid().Get(4, 3) != Alive {
		t.Errorf("unexpected second generation:\n%s", e.Grid())
	}
}

func TestStepIntoRejectsAliasing(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for aliased buffers")
		}
	}()
	StepInto(g, g)
}
