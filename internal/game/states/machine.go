package states

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/DiceGame/internal/game/events"
)

// ErrInvalidTransition is returned for a move the phase graph does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// State is the behaviour attached to one GamePhase.
type State interface {
	Phase() GamePhase
	// Validate reports whether the context allows entering this state.
	Validate(ctx *GameContext) error
	Enter(ctx *GameContext) error
	Exit(ctx *GameContext) error
}

// Transition is one entry of the machine's history.
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine moves a game through its phases. A game is driven from a
// single goroutine, so no locking is done here.
type StateMachine struct {
	phase     GamePhase
	states    map[GamePhase]State
	ctx       *GameContext
	history   []Transition
	publisher events.Publisher
}

// NewStateMachine creates a machine in PhaseSetup with the built-in states.
// publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		phase:     PhaseSetup,
		states:    make(map[GamePhase]State, 4),
		ctx:       ctx,
		publisher: publisher,
	}
	for _, s := range []State{
		NewSetupState(),
		NewInProgressState(),
		NewFinishedState(),
		NewHaltedState(),
	} {
		sm.RegisterState(s)
	}
	return sm
}

// RegisterState installs s for its phase, replacing any earlier one.
func (sm *StateMachine) RegisterState(s State) {
	sm.states[s.Phase()] = s
}

func (sm *StateMachine) CurrentPhase() GamePhase { return sm.phase }
func (sm *StateMachine) Context() *GameContext   { return sm.ctx }

// CanTransitionTo reports whether the phase graph allows moving to target.
func (sm *StateMachine) CanTransitionTo(target GamePhase) bool {
	return sm.phase.CanTransitionTo(target)
}

// TransitionTo validates target against the context, leaves the current
// state and enters the new one. On any failure the phase is unchanged and
// nothing is recorded or published.
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	from := sm.phase
	if !from.CanTransitionTo(target) {
		return fmt.Errorf("%w from %s to %s", ErrInvalidTransition, from, target)
	}

	next, ok := sm.states[target]
	if !ok {
		return fmt.Errorf("no state registered for phase %s", target)
	}
	if err := next.Validate(sm.ctx); err != nil {
		return fmt.Errorf("cannot enter %s: %w", target, err)
	}

	if current, ok := sm.states[from]; ok {
		if err := current.Exit(sm.ctx); err != nil {
			return fmt.Errorf("cannot leave %s: %w", from, err)
		}
	}

	sm.phase = target
	if err := next.Enter(sm.ctx); err != nil {
		sm.phase = from
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	sm.record(from, target, reason)
	return nil
}

func (sm *StateMachine) record(from, to GamePhase, reason string) {
	sm.history = append(sm.history, Transition{
		From:      from,
		To:        to,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(sm.ctx.GameID, from.String(), to.String(), reason))
	}

	sm.ctx.Logger.Debug().
		Stringer("from_phase", from).
		Stringer("to_phase", to).
		Str("reason", reason).
		Msg("State transition completed")
}

// History returns a copy of the transitions made so far.
func (sm *StateMachine) History() []Transition {
	return append([]Transition(nil), sm.history...)
}
