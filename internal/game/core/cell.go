package core

import "fmt"

// Cell is the owner tag stored in every grid square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayerOne
	CellPlayerTwo
)

// Display glyphs for each cell tag
const (
	GlyphEmpty     = "□"
	GlyphPlayerOne = "▣"
	GlyphPlayerTwo = "▦"
	GlyphUnknown   = "?"
)

// GlyphFunc maps a cell to the text drawn for it.
type GlyphFunc func(Cell) string

// Glyph returns the plain display glyph for the cell.
func (c Cell) Glyph() string {
	switch c {
	case CellEmpty:
		return GlyphEmpty
	case CellPlayerOne:
		return GlyphPlayerOne
	case CellPlayerTwo:
		return GlyphPlayerTwo
	default:
		return GlyphUnknown
	}
}

// IsPlayer reports whether the cell is owned by one of the two players.
func (c Cell) IsPlayer() bool {
	return c == CellPlayerOne || c == CellPlayerTwo
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellPlayerOne:
		return "player1"
	case CellPlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// PlainGlyphs renders cells with Cell.Glyph.
func PlainGlyphs(c Cell) string { return c.Glyph() }
