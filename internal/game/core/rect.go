package core

import "fmt"

// Rect is an axis-aligned block of cells. Min and Max are both inclusive.
type Rect struct {
	Min, Max Coordinate
}

// Footprint returns the cells covered by a size-s rectangle anchored at the
// given corner. It does not check grid bounds.
func Footprint(anchor Coordinate, s Size, corner Anchor) (Rect, error) {
	if s.W < 1 || s.H < 1 {
		return Rect{}, fmt.Errorf("size %s: %w", s, ErrInvalidSize)
	}

	switch corner {
	case AnchorTopLeft:
		return Rect{
			Min: anchor,
			Max: Coordinate{X: anchor.X + s.W - 1, Y: anchor.Y + s.H - 1},
		}, nil
	case AnchorBottomRight:
		return Rect{
			Min: Coordinate{X: anchor.X - s.W + 1, Y: anchor.Y - s.H + 1},
			Max: anchor,
		}, nil
	default:
		return Rect{}, fmt.Errorf("anchor %s: %w", corner, ErrInvalidAnchor)
	}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.Max.X - r.Min.X + 1, H: r.Max.Y - r.Min.Y + 1}
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	s := r.Size()
	return s.W * s.H
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coordinate) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Within reports whether the whole rectangle fits a width x height grid.
func (r Rect) Within(width, height int) bool {
	return r.Min.IsValid(width, height) && r.Max.IsValid(width, height)
}

// Overlaps reports whether two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Cells lists the covered coordinates in row-major order.
func (r Rect) Cells() []Coordinate {
	cells := make([]Coordinate, 0, r.Area())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}
