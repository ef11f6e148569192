package server

import (
	"errors"
	"time"

	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/host"
)

// MessageType identifies a websocket message
type MessageType string

// Client → Server message types
const (
	MessageTypeStart       MessageType = "start"
	MessageTypePlay        MessageType = "play"
	MessageTypeDraw        MessageType = "draw"
	MessageTypeChooseColor MessageType = "choose_color"
	MessageTypePass        MessageType = "pass"
)

// Server → Client message types
const (
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// ClientMessage is an intent sent by the browser
type ClientMessage struct {
	Type   MessageType `json:"type"`
	CardID string      `json:"card_id,omitempty"`
	Color  string      `json:"color,omitempty"`
}

// ServerMessage is either a state update or an error
type ServerMessage struct {
	Type      MessageType    `json:"type"`
	Event     host.EventType `json:"event,omitempty"`
	GameID    string         `json:"game_id,omitempty"`
	Effects   []game.Effect  `json:"effects,omitempty"`
	Snapshot  *game.Snapshot `json:"snapshot,omitempty"`
	Error     string         `json:"error,omitempty"`
	Code      string         `json:"code,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewStateMessage wraps a host event
func NewStateMessage(event host.Event) *ServerMessage {
	snap := event.Snapshot
	return &ServerMessage{
		Type:      MessageTypeState,
		Event:     event.Type,
		GameID:    event.GameID,
		Effects:   event.Effects,
		Snapshot:  &snap,
		Timestamp: event.Timestamp,
	}
}

// NewErrorMessage reports a rejected or malformed message
func NewErrorMessage(err error) *ServerMessage {
	return &ServerMessage{
		Type:      MessageTypeError,
		Error:     err.Error(),
		Code:      errorCode(err),
		Timestamp: time.Now(),
	}
}

var errInvalidMessage = errors.New("invalid message")

func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrColorPending):
		return "color_pending"
	case errors.Is(err, game.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, game.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, game.ErrDeckEmpty):
		return "deck_empty"
	case errors.Is(err, game.ErrNoPendingWild):
		return "no_pending_wild"
	case errors.Is(err, game.ErrInvalidColor):
		return "invalid_color"
	case errors.Is(err, host.ErrNotStarted):
		return "not_started"
	case errors.Is(err, errInvalidMessage):
		return "invalid_message"
	default:
		return "internal"
	}
}
