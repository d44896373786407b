package game

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
	"github.com/mitchelldurbincs/DiceGame/internal/game/dice"
	"github.com/mitchelldurbincs/DiceGame/internal/game/events"
	"github.com/mitchelldurbincs/DiceGame/internal/game/states"
)

// Default board dimensions
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// GameConfig holds everything needed to build a Game. Zero values select the
// defaults: a 10x10 board, time-seeded six-sided dice, plain text on stdout,
// a private event bus, no rules and no turn limit. The zero Logger is
// disabled.
type GameConfig struct {
	GameID    string
	Width     int
	Height    int
	Dice      *dice.Dice
	Presenter Presenter
	EventBus  *events.EventBus
	Logger    zerolog.Logger
	Rules     Rules
	MaxTurns  int
}

// Game owns the grid, both players and the turn loop.
type Game struct {
	id      string
	grid    *core.Grid
	players [2]Player

	turn       core.Cell
	winner     core.Cell
	turns      int
	footprints map[core.Cell]core.Rect

	dice      *dice.Dice
	presenter Presenter
	eventBus  *events.EventBus
	rules     Rules
	maxTurns  int

	stateMachine *states.StateMachine
	gameContext  *states.GameContext
	logger       zerolog.Logger
}

// NewGame creates a game in the Setup phase. Player one moves first.
func NewGame(p1, p2 Player, cfg GameConfig) (*Game, error) {
	if p1.Name() == "" || p2.Name() == "" {
		return nil, ErrEmptyName
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.New().String()
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("board %dx%d: %w", cfg.Width, cfg.Height, core.ErrInvalidSize)
	}
	if cfg.MaxTurns < 0 {
		return nil, fmt.Errorf("max turns must be non-negative, got %d", cfg.MaxTurns)
	}
	if cfg.Dice == nil {
		cfg.Dice = dice.NewDefault(nil)
	}
	if cfg.Presenter == nil {
		cfg.Presenter = NewTextPresenter(os.Stdout)
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBusWithLogger(cfg.Logger)
	}

	gctx := states.NewGameContext(cfg.GameID, cfg.Logger)
	logger := cfg.Logger.With().
		Str("component", "game").
		Str("game_id", cfg.GameID).
		Logger()

	g := &Game{
		id:           cfg.GameID,
		grid:         core.NewGrid(cfg.Width, cfg.Height),
		players:      [2]Player{p1, p2},
		turn:         core.CellPlayerOne,
		winner:       core.CellEmpty,
		footprints:   make(map[core.Cell]core.Rect, 2),
		dice:         cfg.Dice,
		presenter:    cfg.Presenter,
		eventBus:     cfg.EventBus,
		rules:        cfg.Rules,
		maxTurns:     cfg.MaxTurns,
		stateMachine: states.NewStateMachine(gctx, cfg.EventBus),
		gameContext:  gctx,
		logger:       logger,
	}

	g.logger.Debug().
		Str("player_one", p1.Name()).
		Str("player_two", p2.Name()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("dice_sides", cfg.Dice.Sides()).
		Msg("Game created")

	return g, nil
}

// Public accessors
func (g *Game) ID() string                 { return g.id }
func (g *Game) Grid() *core.Grid           { return g.grid }
func (g *Game) Players() (Player, Player)  { return g.players[0], g.players[1] }
func (g *Game) Turn() core.Cell            { return g.turn }
func (g *Game) Winner() core.Cell          { return g.winner }
func (g *Game) Turns() int                 { return g.turns }
func (g *Game) Phase() states.GamePhase    { return g.stateMachine.CurrentPhase() }
func (g *Game) EventBus() *events.EventBus { return g.eventBus }

// HaltReason returns why the game stopped without a winner, if it did.
func (g *Game) HaltReason() string { return g.gameContext.HaltReason }

// Footprint returns the rectangle placed for owner during setup.
func (g *Game) Footprint(owner core.Cell) (core.Rect, bool) {
	r, ok := g.footprints[owner]
	return r, ok
}

// Player returns the player behind a cell tag.
func (g *Game) Player(owner core.Cell) (Player, bool) {
	switch owner {
	case core.CellPlayerOne:
		return g.players[0], true
	case core.CellPlayerTwo:
		return g.players[1], true
	default:
		return Player{}, false
	}
}

// RollDice draws a single die value.
func (g *Game) RollDice() int {
	return g.dice.Roll()
}

// RollPair draws a dice pair.
func (g *Game) RollPair() dice.Pair {
	return g.dice.RollPair()
}

// Setup rolls a dice pair for each player and places their starting
// rectangles: player one anchored top-left at (0,0), player two anchored
// bottom-right at the far corner. The grid is shown once both are placed.
func (g *Game) Setup() error {
	if g.gameContext.SetupComplete || g.Phase() != states.PhaseSetup {
		return ErrSetupComplete
	}

	p1, p2 := g.Players()
	g.eventBus.Publish(events.NewGameStartedEvent(g.id, p1.Name(), p2.Name(), g.grid.W, g.grid.H))

	placements := []struct {
		owner  core.Cell
		anchor core.Coordinate
		corner core.Anchor
	}{
		{core.CellPlayerOne, core.NewCoordinate(0, 0), core.AnchorTopLeft},
		{core.CellPlayerTwo, core.NewCoordinate(g.grid.W-1, g.grid.H-1), core.AnchorBottomRight},
	}

	g.presenter.InitialTurn()
	for _, pl := range placements {
		p, _ := g.Player(pl.owner)

		g.presenter.Rolling(p)
		pair := g.dice.RollPair()
		g.eventBus.Publish(events.NewDiceRolledEvent(g.id, pl.owner, pair.First, pair.Second))
		g.presenter.Rolled(p, pair)

		r, err := g.grid.PlaceRectangle(pl.owner, pl.anchor, pair.Size(), pl.corner)
		if err != nil {
			return fmt.Errorf("place initial rectangle for %s: %w", p, err)
		}
		g.footprints[pl.owner] = r
		g.eventBus.Publish(events.NewRectPlacedEvent(g.id, pl.owner, r, pl.corner))

		g.logger.Debug().
			Str("player", p.Name()).
			Stringer("dice", pair).
			Stringer("rect", r).
			Msg("Initial rectangle placed")
	}
	g.presenter.Grid(g.grid)

	g.gameContext.SetupComplete = true
	return nil
}

// Run performs setup and then alternates turns until a winner is reported.
// Without Rules the game halts right after setup and Run returns nil.
// A game runs once; later calls return ErrSetupComplete and change nothing.
func (g *Game) Run(ctx context.Context) error {
	if g.gameContext.SetupComplete || g.Phase() != states.PhaseSetup {
		return ErrSetupComplete
	}
	if err := g.Setup(); err != nil {
		return g.abort(ReasonSetupFailed, err)
	}

	if g.rules == nil {
		return g.halt(ReasonRulesUnspecified, nil)
	}

	if err := g.stateMachine.TransitionTo(states.PhaseInProgress, "setup complete"); err != nil {
		return err
	}

	for g.winner == core.CellEmpty {
		if err := ctx.Err(); err != nil {
			return g.abort(ReasonCancelled, err)
		}
		if g.maxTurns > 0 && g.turns >= g.maxTurns {
			return g.halt(ReasonTurnLimit, nil)
		}

		winner, err := g.takeTurn(ctx)
		if err != nil {
			return g.abort(ReasonMoveFailed, err)
		}
		if winner != core.CellEmpty {
			g.winner = winner
			break
		}

		next, err := NextTurn(g.turn)
		if err != nil {
			return err
		}
		g.turn = next
	}

	return g.finish()
}

// takeTurn announces the current player and asks the rules for a move.
func (g *Game) takeTurn(ctx context.Context) (core.Cell, error) {
	current, ok := g.Player(g.turn)
	if !ok {
		return core.CellEmpty, fmt.Errorf("%w: %s", ErrInvalidTurn, g.turn)
	}
	if !g.Phase().CanTakeTurns() {
		return core.CellEmpty, ErrGameNotRunning
	}

	g.turns++
	g.gameContext.Turn = g.turns
	g.eventBus.Publish(events.NewTurnStartedEvent(g.id, g.turns, g.turn))
	g.presenter.Turn(current)

	winner, err := g.rules.Move(ctx, g, g.turn)
	if err != nil {
		return core.CellEmpty, fmt.Errorf("turn %d for %s: %w", g.turns, current, err)
	}
	return winner, nil
}

// finish announces the winner and moves to the Finished phase.
func (g *Game) finish() error {
	p, ok := g.Player(g.winner)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownWinner, g.winner)
		return g.abort(ReasonMoveFailed, err)
	}

	g.gameContext.Winner = g.winner
	if err := g.stateMachine.TransitionTo(states.PhaseFinished, fmt.Sprintf("%s won", p)); err != nil {
		return err
	}
	g.eventBus.Publish(events.NewPlayerWonEvent(g.id, g.winner, p.Name(), g.turns))
	g.presenter.Winner(p)
	return nil
}

// abort halts the game because of err and returns err.
func (g *Game) abort(reason string, err error) error {
	if haltErr := g.halt(reason, err); haltErr != nil {
		g.logger.Error().Err(haltErr).Msg("Failed to record halt")
	}
	return err
}

// halt records why play stopped and moves to the Halted phase.
func (g *Game) halt(reason string, cause error) error {
	if !g.stateMachine.CanTransitionTo(states.PhaseHalted) {
		return fmt.Errorf("%w: cannot halt from %s", states.ErrInvalidTransition, g.Phase())
	}
	g.gameContext.HaltReason = reason
	g.gameContext.Error = cause

	if err := g.stateMachine.TransitionTo(states.PhaseHalted, reason); err != nil {
		return err
	}
	g.eventBus.Publish(events.NewGameHaltedEvent(g.id, reason, g.turns))
	g.presenter.Halted(reason)
	return nil
}
