// Package dice provides the uniform dice used to size rectangles.
package dice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// DefaultSides is the number of faces on a standard die.
const DefaultSides = 6

// Source is the random capability dice draw from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Dice rolls values uniformly in [1, Sides].
type Dice struct {
	src   Source
	sides int
}

// New creates dice over the given source. A nil source is replaced with a
// time-seeded generator; sides below 1 fall back to DefaultSides.
func New(src Source, sides int) *Dice {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sides < 1 {
		sides = DefaultSides
	}
	return &Dice{src: src, sides: sides}
}

// NewDefault creates six-sided dice.
func NewDefault(src Source) *Dice {
	return New(src, DefaultSides)
}

// Sides returns the highest face value.
func (d *Dice) Sides() int { return d.sides }

// Roll draws a single value.
func (d *Dice) Roll() int {
	return d.src.Intn(d.sides) + 1
}

// RollPair draws two independent values.
func (d *Dice) RollPair() Pair {
	first := d.Roll()
	second := d.Roll()
	return Pair{First: first, Second: second}
}

// Pair is the result of rolling two dice.
type Pair struct {
	First, Second int
}

// Size interprets the pair as width x height.
func (p Pair) Size() core.Size {
	return core.Size{W: p.First, H: p.Second}
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d %d)", p.First, p.Second)
}
