package console

import (
	"github.com/logrusorgru/aurora"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// Palette colours each cell owner on a terminal.
type Palette struct {
	au aurora.Aurora
}

// NewPalette returns a palette. With enabled false every glyph is plain.
func NewPalette(enabled bool) Palette {
	return Palette{au: aurora.NewAurora(enabled)}
}

// Glyph draws c in its owner colour: player one red, player two blue,
// empty squares gray.
func (p Palette) Glyph(c core.Cell) string {
	switch c {
	case core.CellPlayerOne:
		return p.au.Red(c.Glyph()).String()
	case core.CellPlayerTwo:
		return p.au.Blue(c.Glyph()).String()
	case core.CellEmpty:
		return p.au.Gray(12, c.Glyph()).String()
	default:
		return p.au.Yellow(c.Glyph()).String()
	}
}

// Saucer is the fill used by the dice animation.
func (p Palette) Saucer() string {
	return p.au.Yellow("█").String()
}
