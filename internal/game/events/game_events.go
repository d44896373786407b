package events

import (
	"github.com/mitchelldurbincs/DiceGame/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeDiceRolled      = "dice.rolled"
	TypeRectPlaced      = "rectangle.placed"
	TypeTurnStarted     = "turn.started"
	TypePlayerWon       = "player.won"
	TypeGameHalted      = "game.halted"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once both players are known and setup begins
type GameStartedEvent struct {
	BaseEvent
	PlayerOne string `json:"player_one"`
	PlayerTwo string `json:"player_two"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func NewGameStartedEvent(gameID, playerOne, playerTwo string, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		PlayerOne: playerOne,
		PlayerTwo: playerTwo,
		Width:     width,
		Height:    height,
	}
}

// DiceRolledEvent records a dice pair rolled for a player
type DiceRolledEvent struct {
	BaseEvent
	Player core.Cell `json:"player"`
	First  int       `json:"first"`
	Second int       `json:"second"`
}

func NewDiceRolledEvent(gameID string, player core.Cell, first, second int) *DiceRolledEvent {
	return &DiceRolledEvent{
		BaseEvent: newBase(TypeDiceRolled, gameID),
		Player:    player,
		First:     first,
		Second:    second,
	}
}

// RectPlacedEvent is published after a rectangle has been written to the grid
type RectPlacedEvent struct {
	BaseEvent
	Player core.Cell   `json:"player"`
	Rect   core.Rect   `json:"rect"`
	Anchor core.Anchor `json:"anchor"`
}

func NewRectPlacedEvent(gameID string, player core.Cell, r core.Rect, anchor core.Anchor) *RectPlacedEvent {
	return &RectPlacedEvent{
		BaseEvent: newBase(TypeRectPlaced, gameID),
		Player:    player,
		Rect:      r,
		Anchor:    anchor,
	}
}

// TurnStartedEvent is published at the beginning of each turn
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int       `json:"turn_number"`
	Player     core.Cell `json:"player"`
}

func NewTurnStartedEvent(gameID string, turn int, player core.Cell) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, gameID),
		TurnNumber: turn,
		Player:     player,
	}
}

// PlayerWonEvent is published when a winner has been decided
type PlayerWonEvent struct {
	BaseEvent
	Winner     core.Cell `json:"winner"`
	WinnerName string    `json:"winner_name"`
	FinalTurn  int       `json:"final_turn"`
}

func NewPlayerWonEvent(gameID string, winner core.Cell, name string, finalTurn int) *PlayerWonEvent {
	return &PlayerWonEvent{
		BaseEvent:  newBase(TypePlayerWon, gameID),
		Winner:     winner,
		WinnerName: name,
		FinalTurn:  finalTurn,
	}
}

// GameHaltedEvent is published when the game stops without a winner
type GameHaltedEvent struct {
	BaseEvent
	Reason    string `json:"reason"`
	FinalTurn int    `json:"final_turn"`
}

func NewGameHaltedEvent(gameID, reason string, finalTurn int) *GameHaltedEvent {
	return &GameHaltedEvent{
		BaseEvent: newBase(TypeGameHalted, gameID),
		Reason:    reason,
		FinalTurn: finalTurn,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
