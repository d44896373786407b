package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	Logger zerolog.Logger

	// SetupComplete is set once both initial rectangles are on the grid
	SetupComplete bool

	// StartTime is when PhaseInProgress was entered
	StartTime time.Time

	// Turn counts turns taken in PhaseInProgress
	Turn int

	// Winner is CellEmpty until a player wins
	Winner core.Cell

	// HaltReason explains why play stopped without a winner
	HaltReason string

	// Error holds the error that stopped the game, if any
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Winner: core.CellEmpty,
	}
}

// GetElapsedTime returns the time elapsed since play started
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
