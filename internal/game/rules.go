package game

import (
	"context"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// Rules performs one move for the player whose turn it is and reports a
// winner, or core.CellEmpty while play continues. No implementation ships
// with the game: move and win rules have to be supplied by the caller, and a
// game without Rules halts once setup is done.
type Rules interface {
	Move(ctx context.Context, g *Game, turn core.Cell) (core.Cell, error)
}

// RulesFunc adapts a function to the Rules interface.
type RulesFunc func(ctx context.Context, g *Game, turn core.Cell) (core.Cell, error)

func (f RulesFunc) Move(ctx context.Context, g *Game, turn core.Cell) (core.Cell, error) {
	return f(ctx, g, turn)
}
