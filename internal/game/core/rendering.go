package core

import (
	"strconv"
	"strings"
)

// Box drawing characters used for the grid frame
const (
	frameTopLeft     = "╔"
	frameTopRight    = "╗"
	frameBottomLeft  = "╚"
	frameBottomRight = "╝"
	frameHorizontal  = "═"
	frameVertical    = "║"
)

// String renders the grid with plain glyphs.
func (g *Grid) String() string {
	return g.Render(PlainGlyphs)
}

// Render draws the grid inside a box: top border, column header, one line
// per row and a bottom border, each terminated by a newline.
func (g *Grid) Render(glyphs GlyphFunc) string {
	if glyphs == nil {
		glyphs = PlainGlyphs
	}

	border := strings.Repeat(frameHorizontal, g.W+1)

	var sb strings.Builder
	// Each cell is a 3-byte rune plus any colour codes the glyph func adds
	sb.Grow((g.W*4 + 16) * (g.H + 3))

	sb.WriteString(frameTopLeft)
	sb.WriteString(border)
	sb.WriteString(frameTopRight)
	sb.WriteString("\n")

	// Header row
	sb.WriteString(frameVertical)
	sb.WriteString("  ")
	for x := 0; x < g.W; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteString(" ")
	}
	sb.WriteString(frameVertical)
	sb.WriteString("\n")

	// Grid rows
	for y := 0; y < g.H; y++ {
		sb.WriteString(frameVertical)
		sb.WriteString(strconv.Itoa(y))
		sb.WriteString(" ")
		for x := 0; x < g.W; x++ {
			sb.WriteString(glyphs(g.cells[g.Idx(x, y)]))
		}
		sb.WriteString(frameVertical)
		sb.WriteString("\n")
	}

	sb.WriteString(frameBottomLeft)
	sb.WriteString(border)
	sb.WriteString(frameBottomRight)
	sb.WriteString("\n")

	return sb.String()
}
