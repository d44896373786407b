package states

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// SetupState covers the initial dice rolls and placements
type SetupState struct{}

func NewSetupState() State { return &SetupState{} }

func (s *SetupState) Phase() GamePhase { return PhaseSetup }

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// InProgressState represents active play
type InProgressState struct{}

func NewInProgressState() State { return &InProgressState{} }

func (s *InProgressState) Phase() GamePhase { return PhaseInProgress }

func (s *InProgressState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *InProgressState) Exit(ctx *GameContext) error {
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Int("turns", ctx.Turn).
		Msg("Exiting in-progress state")
	return nil
}

func (s *InProgressState) Validate(ctx *GameContext) error {
	if !ctx.SetupComplete {
		return errors.New("cannot start play before setup is complete")
	}
	return nil
}

// FinishedState represents a game with a winner
type FinishedState struct{}

func NewFinishedState() State { return &FinishedState{} }

func (s *FinishedState) Phase() GamePhase { return PhaseFinished }

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Stringer("winner", ctx.Winner).
		Int("turns", ctx.Turn).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if !ctx.Winner.IsPlayer() {
		return fmt.Errorf("finished state requires a winner, got %s", ctx.Winner)
	}
	return nil
}

// HaltedState represents play stopped without a winner
type HaltedState struct{}

func NewHaltedState() State { return &HaltedState{} }

func (s *HaltedState) Phase() GamePhase { return PhaseHalted }

func (s *HaltedState) Enter(ctx *GameContext) error {
	// Halting without an error is an ordinary end of play
	var evt *zerolog.Event
	if ctx.Error != nil {
		evt = ctx.Logger.Warn().Err(ctx.Error)
	} else {
		evt = ctx.Logger.Info()
	}
	evt.Str("reason", ctx.HaltReason).
		Int("turns", ctx.Turn).
		Msg("Game halted")
	return nil
}

func (s *HaltedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *HaltedState) Validate(ctx *GameContext) error {
	if ctx.HaltReason == "" {
		return errors.New("halted state requires a reason")
	}
	return nil
}
