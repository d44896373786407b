package core

import "fmt"

// Grid is the board: a flat row-major array of owner tags.
type Grid struct {
	W, H  int
	cells []Cell // length = W*H (row-major)
}

// NewGrid allocates a w x h grid with every cell empty. Negative dimensions
// are treated as zero, giving a grid nothing can be placed on.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

func (g *Grid) Idx(x, y int) int      { return y*g.W + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds checks if coordinates are within grid boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the owner tag of the cell at c.
func (g *Grid) At(c Coordinate) (Cell, error) {
	if !g.InBounds(c.X, c.Y) {
		return CellEmpty, fmt.Errorf("cell %s on %dx%d grid: %w", c, g.W, g.H, ErrOutOfBounds)
	}
	return g.cells[g.Idx(c.X, c.Y)], nil
}

// Set writes a single cell.
func (g *Grid) Set(c Coordinate, cell Cell) error {
	if !g.InBounds(c.X, c.Y) {
		return fmt.Errorf("cell %s on %dx%d grid: %w", c, g.W, g.H, ErrOutOfBounds)
	}
	g.cells[g.Idx(c.X, c.Y)] = cell
	return nil
}

// Cells returns a copy of the backing array.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Count returns how many cells carry the given tag.
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// PlaceRectangle fills a size-s block with owner. The anchor is the block's
// top-left or bottom-right corner depending on corner. The whole block must
// fit on the grid; otherwise nothing is written and an ErrOutOfBounds is
// returned.
func (g *Grid) PlaceRectangle(owner Cell, anchor Coordinate, s Size, corner Anchor) (Rect, error) {
	if !owner.IsPlayer() {
		return Rect{}, fmt.Errorf("place %s: %w", owner, ErrInvalidOwner)
	}

	r, err := Footprint(anchor, s, corner)
	if err != nil {
		return Rect{}, fmt.Errorf("place %s at %s: %w", owner, anchor, err)
	}
	if !r.Within(g.W, g.H) {
		return Rect{}, fmt.Errorf("place %s %s anchored %s at %s on %dx%d grid: %w",
			owner, s, corner, anchor, g.W, g.H, ErrOutOfBounds)
	}

	for y := r.Min.Y; y <= r.Max.Y; y++ {
		row := y * g.W
		for x := r.Min.X; x <= r.Max.X; x++ {
			g.cells[row+x] = owner
		}
	}
	return r, nil
}
