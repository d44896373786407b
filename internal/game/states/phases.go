package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseSetup - dice rolls and initial rectangle placement
	PhaseSetup GamePhase = iota

	// PhaseInProgress - players alternate turns
	PhaseInProgress

	// PhaseFinished - a winner has been decided
	PhaseFinished

	// PhaseHalted - play stopped without a winner
	PhaseHalted
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseInProgress:
		return "InProgress"
	case PhaseFinished:
		return "Finished"
	case PhaseHalted:
		return "Halted"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished || p == PhaseHalted
}

// CanTakeTurns returns true if players may move in this phase
func (p GamePhase) CanTakeTurns() bool {
	return p == PhaseInProgress
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseInProgress, PhaseHalted}
	case PhaseInProgress:
		return []GamePhase{PhaseFinished, PhaseHalted}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	switch s {
	case "Setup":
		return PhaseSetup, nil
	case "InProgress":
		return PhaseInProgress, nil
	case "Finished":
		return PhaseFinished, nil
	case "Halted":
		return PhaseHalted, nil
	default:
		return PhaseSetup, fmt.Errorf("unknown phase %q", s)
	}
}
