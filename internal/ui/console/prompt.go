package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/mitchelldurbincs/DiceGame/internal/game"
)

// ErrInputClosed is returned when input ends before a name was entered.
var ErrInputClosed = errors.New("input closed before a name was entered")

// PromptPlayers asks for both player names on out and reads them from in.
// Blank answers are rejected and asked again.
func PromptPlayers(in io.Reader, out io.Writer) (game.Player, game.Player, error) {
	sc := bufio.NewScanner(in)

	p1, err := promptName(sc, out, "Player1")
	if err != nil {
		return game.Player{}, game.Player{}, err
	}
	p2, err := promptName(sc, out, "Player2")
	if err != nil {
		return game.Player{}, game.Player{}, err
	}
	return p1, p2, nil
}

func promptName(sc *bufio.Scanner, out io.Writer, label string) (game.Player, error) {
	for {
		fmt.Fprintf(out, "Enter name for %s: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return game.Player{}, fmt.Errorf("read name for %s: %w", label, err)
			}
			return game.Player{}, fmt.Errorf("%s: %w", label, ErrInputClosed)
		}

		p, err := game.NewPlayer(sc.Text())
		if errors.Is(err, game.ErrEmptyName) {
			fmt.Fprintln(out, "Name must not be empty")
			continue
		}
		if err != nil {
			return game.Player{}, err
		}
		return p, nil
	}
}
