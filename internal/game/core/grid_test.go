package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small grid", 4, 4},
		{"default grid", 10, 10},
		{"rectangular grid", 7, 3},
		{"minimum grid", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(tt.width, tt.height)

			assert.Equal(t, tt.width, grid.W)
			assert.Equal(t, tt.height, grid.H)
			assert.Len(t, grid.Cells(), tt.width*tt.height)
			assert.Equal(t, tt.width*tt.height, grid.Count(CellEmpty))
		})
	}
}

func TestGrid_IdxAndXY(t *testing.T) {
	grid := NewGrid(5, 4)

	tests := []struct {
		x, y int
		idx  int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{0, 1, 5},
		{2, 2, 12},
		{4, 3, 19},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.idx, grid.Idx(tt.x, tt.y), "Idx(%d,%d)", tt.x, tt.y)
		x, y := grid.XY(tt.idx)
		assert.Equal(t, tt.x, x, "X for idx %d", tt.idx)
		assert.Equal(t, tt.y, y, "Y for idx %d", tt.idx)
	}
}

func TestGrid_AtAndSet(t *testing.T) {
	grid := NewGrid(3, 3)

	require.NoError(t, grid.Set(NewCoordinate(1, 2), CellPlayerTwo))

	cell, err := grid.At(NewCoordinate(1, 2))
	require.NoError(t, err)
	assert.Equal(t, CellPlayerTwo, cell)

	_, err = grid.At(NewCoordinate(3, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = grid.Set(NewCoordinate(-1, 0), CellPlayerOne)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 1, grid.Count(CellPlayerTwo))
}

func TestGrid_PlaceRectangleTopLeft(t *testing.T) {
	sizes := []Size{{1, 1}, {3, 2}, {6, 6}, {2, 5}}

	for _, s := range sizes {
		t.Run(s.String(), func(t *testing.T) {
			grid := NewGrid(10, 10)

			r, err := grid.PlaceRectangle(CellPlayerOne, NewCoordinate(0, 0), s, AnchorTopLeft)
			require.NoError(t, err)
			assert.Equal(t, s, r.Size())

			for y := 0; y < grid.H; y++ {
				for x := 0; x < grid.W; x++ {
					cell, err := grid.At(NewCoordinate(x, y))
					require.NoError(t, err)
					if y < s.H && x < s.W {
						assert.Equal(t, CellPlayerOne, cell, "cell (%d,%d)", x, y)
					} else {
						assert.Equal(t, CellEmpty, cell, "cell (%d,%d)", x, y)
					}
				}
			}
		})
	}
}

func TestGrid_PlaceRectangleBottomRight(t *testing.T) {
	sizes := []Size{{1, 1}, {4, 2}, {6, 6}, {3, 5}}

	for _, s := range sizes {
		t.Run(s.String(), func(t *testing.T) {
			grid := NewGrid(10, 10)
			anchor := NewCoordinate(grid.W-1, grid.H-1)

			r, err := grid.PlaceRectangle(CellPlayerTwo, anchor, s, AnchorBottomRight)
			require.NoError(t, err)
			assert.Equal(t, anchor, r.Max)

			for y := 0; y < grid.H; y++ {
				for x := 0; x < grid.W; x++ {
					cell, _ := grid.At(NewCoordinate(x, y))
					inside := y >= grid.H-s.H && x >= grid.W-s.W
					if inside {
						assert.Equal(t, CellPlayerTwo, cell, "cell (%d,%d)", x, y)
					} else {
						assert.Equal(t, CellEmpty, cell, "cell (%d,%d)", x, y)
					}
				}
			}
			assert.Equal(t, s.W*s.H, grid.Count(CellPlayerTwo))
		})
	}
}

func TestGrid_PlaceRectangleOverlapLastWriteWins(t *testing.T) {
	grid := NewGrid(10, 10)

	first, err := grid.PlaceRectangle(CellPlayerOne, NewCoordinate(0, 0), Size{W: 6, H: 6}, AnchorTopLeft)
	require.NoError(t, err)
	second, err := grid.PlaceRectangle(CellPlayerTwo, NewCoordinate(9, 9), Size{W: 6, H: 6}, AnchorBottomRight)
	require.NoError(t, err)
	require.True(t, first.Overlaps(second))

	// (4,4) and (5,5) are covered by both rectangles
	for _, c := range []Coordinate{{4, 4}, {5, 5}, {4, 5}, {5, 4}} {
		cell, _ := grid.At(c)
		assert.Equal(t, CellPlayerTwo, cell, "overlap cell %s", c)
	}
	assert.Equal(t, 36, grid.Count(CellPlayerTwo))
	assert.Equal(t, 32, grid.Count(CellPlayerOne))
}

func TestGrid_PlaceRectangleErrors(t *testing.T) {
	tests := []struct {
		name    string
		owner   Cell
		anchor  Coordinate
		size    Size
		corner  Anchor
		wantErr error
	}{
		{"bottom-right underflow x", CellPlayerTwo, Coordinate{2, 9}, Size{4, 1}, AnchorBottomRight, ErrOutOfBounds},
		{"bottom-right underflow y", CellPlayerTwo, Coordinate{9, 0}, Size{1, 2}, AnchorBottomRight, ErrOutOfBounds},
		{"top-left overflow", CellPlayerOne, Coordinate{8, 8}, Size{3, 1}, AnchorTopLeft, ErrOutOfBounds},
		{"anchor outside grid", CellPlayerOne, Coordinate{10, 0}, Size{1, 1}, AnchorTopLeft, ErrOutOfBounds},
		{"zero width", CellPlayerOne, Coordinate{0, 0}, Size{0, 3}, AnchorTopLeft, ErrInvalidSize},
		{"negative height", CellPlayerOne, Coordinate{0, 0}, Size{2, -1}, AnchorTopLeft, ErrInvalidSize},
		{"empty owner", CellEmpty, Coordinate{0, 0}, Size{1, 1}, AnchorTopLeft, ErrInvalidOwner},
		{"unknown anchor", CellPlayerOne, Coordinate{0, 0}, Size{1, 1}, Anchor(7), ErrInvalidAnchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(10, 10)
			_, err := grid.PlaceRectangle(tt.owner, tt.anchor, tt.size, tt.corner)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 100, grid.Count(CellEmpty), "failed placement must not write")
		})
	}
}

func TestRect(t *testing.T) {
	r, err := Footprint(NewCoordinate(9, 9), Size{W: 3, H: 2}, AnchorBottomRight)
	require.NoError(t, err)

	assert.Equal(t, Rect{Min: Coordinate{7, 8}, Max: Coordinate{9, 9}}, r)
	assert.Equal(t, 6, r.Area())
	assert.True(t, r.Contains(Coordinate{7, 8}))
	assert.False(t, r.Contains(Coordinate{6, 8}))
	assert.True(t, r.Within(10, 10))
	assert.False(t, r.Within(9, 10))
	assert.Equal(t, []Coordinate{{7, 8}, {8, 8}, {9, 8}, {7, 9}, {8, 9}, {9, 9}}, r.Cells())
	assert.Equal(t, "(7,8)-(9,9)", r.String())
}

func TestNewGrid_NegativeDimensions(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"negative width", -3, 4, 0, 4},
		{"negative height", 4, -1, 4, 0},
		{"both negative", -2, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var grid *Grid
			require.NotPanics(t, func() { grid = NewGrid(tt.w, tt.h) })
			assert.Equal(t, tt.wantW, grid.W)
			assert.Equal(t, tt.wantH, grid.H)
			assert.Empty(t, grid.Cells())

			_, err := grid.PlaceRectangle(CellPlayerOne, NewCoordinate(0, 0), Size{W: 1, H: 1}, AnchorTopLeft)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}
