package life

// NextState applies Conway's rules to one cell:
// a live cell survives with 2 or 3 neighbors, a dead cell is born with 3.
func NextState(c Cell, neighbors int) Cell {
	if c == Alive && (neighbors == 2 || neighbors == 3) {
		return Alive
	}
	if c == Dead && neighbors == 3 {
		return Alive
	}
	return Dead
}

// StepInto computes the successor of cur into next.
// Only interior cells are evaluated; next's border is left as it is, so
// callers pass a cleared buffer. cur is never written.
func StepInto(cur, next *Grid) {
	if cur == next {
		panic("life: StepInto with aliased buffers")
	}
	if cur.w != next.w || cur.h != next.h {
		panic("life: StepInto with mismatched dimensions")
	}
	w := cur.w
	for y := Border; y < cur.h-Border; y++ {
		for x := Border; x < w-Border; x++ {
			next.cells[y*w+x] = NextState(cur.cells[y*w+x], cur.NeighborCount(x, y))
		}
	}
}

// Advance returns the successor of cur in a freshly allocated grid.
// A degenerate grid yields an empty successor of the same size.
func Advance(cur *Grid) *Grid {
	next := NewGrid(cur.w, cur.h)
	StepInto(cur, next)
	return next
}

// Engine owns the current/next buffer pair. Each Advance writes the
// successor into next, swaps the pair and clears the old current so it can
// be reused without reallocating.
type Engine struct {
	cur  *Grid
	next *Grid
}

// NewEngine creates an engine over an empty board of the given size.
func NewEngine(w, h int) *Engine {
	return &Engine{cur: NewGrid(w, h), next: NewGrid(w, h)}
}

// Grid returns the current generation. The pointer changes after every
// Advance; hold on to the Engine, not the Grid.
func (e *Engine) Grid() *Grid {
	return e.cur
}

// Advance replaces the current generation with its successor.
func (e *Engine) Advance() {
	StepInto(e.cur, e.next)
	e.cur, e.next = e.next, e.cur
	e.next.Clear()
}
