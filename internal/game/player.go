package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// Player is a named participant. The name never changes after creation.
type Player struct {
	name string
}

// NewPlayer trims the name and rejects blank input.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyName
	}
	return Player{name: name}, nil
}

func (p Player) Name() string   { return p.name }
func (p Player) String() string { return p.name }

// NextTurn returns the player tag that moves after turn.
func NextTurn(turn core.Cell) (core.Cell, error) {
	switch turn {
	case core.CellPlayerOne:
		return core.CellPlayerTwo, nil
	case core.CellPlayerTwo:
		return core.CellPlayerOne, nil
	default:
		return core.CellEmpty, fmt.Errorf("%w: %s", ErrInvalidTurn, turn)
	}
}
