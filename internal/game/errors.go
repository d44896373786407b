package game

import "errors"

var (
	ErrEmptyName      = errors.New("player name is empty")
	ErrInvalidTurn    = errors.New("invalid turn")
	ErrUnknownWinner  = errors.New("winner unknown")
	ErrSetupComplete  = errors.New("setup already complete")
	ErrGameNotRunning = errors.New("game is not in progress")
)

// Reasons recorded when a game halts without a winner
const (
	ReasonRulesUnspecified = "turn rules unspecified"
	ReasonTurnLimit        = "turn limit reached"
	ReasonSetupFailed      = "setup failed"
	ReasonMoveFailed       = "move failed"
	ReasonCancelled        = "cancelled"
)
