package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

type fixedSource struct {
	values []int
	pos    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.values[f.pos%len(f.values)] % n
	f.pos++
	return v
}

func TestDice_RollBounds(t *testing.T) {
	d := NewDefault(rand.New(rand.NewSource(42)))

	seen := make(map[int]int)
	for i := 0; i < 5000; i++ {
		v := d.Roll()
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
		seen[v]++
	}

	// Every face should come up over this many rolls
	for face := 1; face <= 6; face++ {
		assert.Positive(t, seen[face], "face %d never rolled", face)
	}
}

func TestDice_RollPairUsesSourceInOrder(t *testing.T) {
	d := NewDefault(&fixedSource{values: []int{2, 5, 0, 3}})

	assert.Equal(t, Pair{First: 3, Second: 6}, d.RollPair())
	assert.Equal(t, Pair{First: 1, Second: 4}, d.RollPair())
}

func TestDice_Defaults(t *testing.T) {
	d := New(nil, 0)
	assert.Equal(t, DefaultSides, d.Sides())

	v := d.Roll()
	assert.True(t, v >= 1 && v <= DefaultSides)

	d = New(&fixedSource{values: []int{3}}, 4)
	assert.Equal(t, 4, d.Sides())
	assert.Equal(t, 4, d.Roll())
}

func TestPair(t *testing.T) {
	p := Pair{First: 4, Second: 2}

	assert.Equal(t, "(4 2)", p.String())
	assert.Equal(t, core.Size{W: 4, H: 2}, p.Size())
}
