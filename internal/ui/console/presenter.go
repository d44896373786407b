package console

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mitchelldurbincs/DiceGame/internal/game"
)

const (
	rollSteps    = 12
	rollDuration = 600 * time.Millisecond
)

// Options controls how the console presenter draws.
type Options struct {
	Color       bool
	AnimateDice bool
	// RollDuration overrides how long the dice animation runs.
	RollDuration time.Duration
}

// Presenter is a game.Presenter for terminals. It draws coloured glyphs and
// can animate dice rolls; every other line is the plain text output.
type Presenter struct {
	*game.TextPresenter
	palette Palette
	opts    Options
}

var _ game.Presenter = (*Presenter)(nil)

// NewPresenter creates a console presenter writing to out.
func NewPresenter(out io.Writer, opts Options) *Presenter {
	if opts.RollDuration <= 0 {
		opts.RollDuration = rollDuration
	}

	palette := NewPalette(opts.Color)
	tp := game.NewTextPresenter(out)
	tp.Glyphs = palette.Glyph

	return &Presenter{
		TextPresenter: tp,
		palette:       palette,
		opts:          opts,
	}
}

// Rolling announces the roll and, when enabled, plays a short bar animation.
func (p *Presenter) Rolling(pl game.Player) {
	p.TextPresenter.Rolling(pl)
	if !p.opts.AnimateDice {
		return
	}

	bar := progressbar.NewOptions(rollSteps,
		progressbar.OptionSetWriter(p.Out),
		progressbar.OptionSetDescription(pl.Name()),
		progressbar.OptionSetWidth(20),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        p.palette.Saucer(),
			SaucerHead:    p.palette.Saucer(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)

	step := p.opts.RollDuration / rollSteps
	for i := 0; i < rollSteps; i++ {
		_ = bar.Add(1)
		time.Sleep(step)
	}
	_ = bar.Finish()
}
