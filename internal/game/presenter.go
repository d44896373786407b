package game

import (
	"fmt"
	"io"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
	"github.com/mitchelldurbincs/DiceGame/internal/game/dice"
)

// Presenter receives the player-facing output of a game.
type Presenter interface {
	InitialTurn()
	Rolling(p Player)
	Rolled(p Player, pair dice.Pair)
	Grid(g *core.Grid)
	Turn(p Player)
	Winner(p Player)
	Halted(reason string)
}

// TextPresenter writes plain text lines to an io.Writer.
type TextPresenter struct {
	Out    io.Writer
	Glyphs core.GlyphFunc
}

// NewTextPresenter creates a presenter that draws cells with plain glyphs.
func NewTextPresenter(out io.Writer) *TextPresenter {
	return &TextPresenter{Out: out, Glyphs: core.PlainGlyphs}
}

func (tp *TextPresenter) InitialTurn() {
	fmt.Fprintln(tp.Out, "Initial turn")
}

func (tp *TextPresenter) Rolling(Player) {
	fmt.Fprintln(tp.Out, "Rolling dice...")
}

func (tp *TextPresenter) Rolled(p Player, pair dice.Pair) {
	fmt.Fprintf(tp.Out, "%s got %s\n", p, pair)
}

func (tp *TextPresenter) Grid(g *core.Grid) {
	fmt.Fprintln(tp.Out, g.Render(tp.Glyphs))
}

func (tp *TextPresenter) Turn(p Player) {
	fmt.Fprintf(tp.Out, "%s move\n", p)
}

func (tp *TextPresenter) Winner(p Player) {
	fmt.Fprintf(tp.Out, "Player %s Wins!\n", p)
}

func (tp *TextPresenter) Halted(reason string) {
	fmt.Fprintf(tp.Out, "Game halted: %s\n", reason)
}
