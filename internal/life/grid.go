// Package life implements Conway's Game of Life on a bounded board.
// It contains the cell field, the generation engine and the simulation
// controller. Nothing here knows about terminals; the platform layer reads
// the board through View and drives the controller with commands and ticks.
package life

import "fmt"

// Cell is the state of one board position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

// Border is the width of the always-dead frame around the playable area.
const Border = 1

// MinSize is the smallest width or height that still has a playable cell.
const MinSize = 2*Border + 1

// BoundsError reports a grid access outside [0,W)x[0,H).
// Grid methods panic with a *BoundsError; all callers are expected to
// respect the bordered geometry, so reaching this is an integration bug.
type BoundsError struct {
	Op   string
	X, Y int
	W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: %s(%d, %d) out of bounds for %dx%d grid", e.Op, e.X, e.Y, e.W, e.H)
}

// View is the read-only surface handed to renderers.
type View interface {
	Width() int
	Height() int
	Get(x, y int) Cell
	Interior(x, y int) bool
}

// Grid is a fixed-size field of cells stored row-major: index = y*W + x.
// The outermost ring of cells is the border; it is never written by the
// engine and never toggled by input, so neighbor lookups from any interior
// cell stay in range.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid creates a grid with every cell Dead.
// Dimensions below MinSize give a degenerate grid with no playable cells;
// negative dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	w = max(w, 0)
	h = max(h, 0)
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns including the border.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows including the border.
func (g *Grid) Height() int { return g.h }

// Degenerate reports whether the grid has no playable area.
func (g *Grid) Degenerate() bool {
	return g.w < MinSize || g.h < MinSize
}

// InBounds returns true if (x, y) addresses a stored cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Interior returns true if (x, y) lies in the playable region
// [1, W-2] x [1, H-2].
func (g *Grid) Interior(x, y int) bool {
	return x >= Border && x < g.w-Border && y >= Border && y < g.h-Border
}

func (g *Grid) index(op string, x, y int) int {
	if !g.InBounds(x, y) {
		panic(&BoundsError{Op: op, X: x, Y: y, W: g.w, H: g.h})
	}
	return y*g.w + x
}

// Get returns the cell at (x, y). Panics with *BoundsError when out of range.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index("Get", x, y)]
}

// Set overwrites the cell at (x, y). Panics with *BoundsError when out of range.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index("Set", x, y)] = c
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) Cell {
	i := g.index("Toggle", x, y)
	g.cells[i] ^= Alive
	return g.cells[i]
}

// Clear sets every cell to Dead in place.
func (g *Grid) Clear() {
	clear(g.cells)
}

// NeighborCount returns the number of Alive cells in the Moore
// neighborhood of (x, y). The coordinate must be interior; there is no
// wraparound, the border ring reads as Dead.
func (g *Grid) NeighborCount(x, y int) int {
	if !g.Interior(x, y) {
		panic(&BoundsError{Op: "NeighborCount", X: x, Y: y, W: g.w, H: g.h})
	}
	above := (y-1)*g.w + x
	row := y*g.w + x
	below := (y+1)*g.w + x

	n := g.cells[above-1] + g.cells[above] + g.cells[above+1] +
		g.cells[row-1] + g.cells[row+1] +
		g.cells[below-1] + g.cells[below] + g.cells[below+1]
	return int(n)
}

// Population returns the number of Alive cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return count
}

// CopyFrom copies the contents of src, which must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if src.w != g.w || src.h != g.h {
		panic(fmt.Sprintf("life: CopyFrom %dx%d into %dx%d", src.w, src.h, g.w, g.h))
	}
	copy(g.cells, src.cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.w, g.h)
	c.CopyFrom(g)
	return c
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '#' and '.', useful in tests and logs.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.w+1)*g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
