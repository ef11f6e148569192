package game

import (
	"fmt"
	"slices"
)

// Actor identifies a seat at the table
type Actor int

const (
	Player Actor = iota
	Computer
)

const numActors = 2

// String returns "player" or "computer"
func (a Actor) String() string {
	switch a {
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("actor(%d)", int(a))
	}
}

// Name returns the actor as addressed in status messages
func (a Actor) Name() string {
	if a == Player {
		return "You"
	}
	return "Computer"
}

func (a Actor) valid() bool {
	return a >= 0 && a < numActors
}

// MarshalText encodes the actor by name
func (a Actor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses "player" or "computer"
func (a *Actor) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player":
		*a = Player
	case "computer":
		*a = Computer
	default:
		return fmt.Errorf("invalid actor %q", text)
	}
	return nil
}

// Direction of play around the seat list
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Reversed returns the opposite direction
func (d Direction) Reversed() Direction {
	return -d
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses "clockwise" or "counter-clockwise"
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "clockwise":
		*d = Clockwise
	case "counter-clockwise":
		*d = CounterClockwise
	default:
		return fmt.Errorf("invalid direction %q", text)
	}
	return nil
}

// Phase is the state of the turn state machine
type Phase int

const (
	AwaitingPlayerMove Phase = iota
	AwaitingColorChoice
	ComputerThinking
	GameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case AwaitingPlayerMove:
		return "awaiting_player_move"
	case AwaitingColorChoice:
		return "awaiting_color_choice"
	case ComputerThinking:
		return "computer_thinking"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name
func (p *Phase) UnmarshalText(text []byte) error {
	for candidate := AwaitingPlayerMove; candidate <= GameOver; candidate++ {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid phase %q", text)
}

// Phase derives the current state machine phase
func (s *Session) Phase() Phase {
	switch {
	case s.over:
		return GameOver
	case s.pending != nil:
		return AwaitingColorChoice
	case s.current == Computer:
		return ComputerThinking
	default:
		return AwaitingPlayerMove
	}
}

// checkTurn validates that actor may submit a play, draw or pass
func (s *Session) checkTurn(actor Actor) error {
	if s.over {
		return ErrGameOver
	}
	if s.pending != nil {
		return ErrColorPending
	}
	if !actor.valid() || actor != s.current {
		return fmt.Errorf("%w: %s tried to act on %s's turn", ErrNotYourTurn, actor, s.current)
	}
	return nil
}

// seatAfter walks steps seats from actor in the current direction
func (s *Session) seatAfter(actor Actor, steps int) Actor {
	n := len(s.seats)
	idx := slices.Index(s.seats, actor)
	next := ((idx+int(s.direction)*steps)%n + n) % n
	return s.seats[next]
}

// nextSeat is the actor who would normally play after actor
func (s *Session) nextSeat(actor Actor) Actor {
	return s.seatAfter(actor, 1)
}

// endTurn runs after every accepted play, draw or color choice. The win
// condition is checked before control moves on. A skip elides the next
// seat entirely; with two seats that hands the turn straight back.
func (s *Session) endTurn(actor Actor, skip bool) {
	if len(s.hands[actor]) == 0 {
		s.over = true
		s.winner = actor
		s.hasWinner = true
		return
	}
	steps := 1
	if skip {
		steps = 2
	}
	s.current = s.seatAfter(actor, steps)
}

// IsOver reports whether the game has finished, with or without a winner
func (s *Session) IsOver() bool {
	return s.over
}

// Winner returns the winning actor once a hand has been emptied
func (s *Session) Winner() (Actor, bool) {
	return s.winner, s.hasWinner
}

// Current returns the actor on turn. While a wild is pending this is still
// the actor who played it.
func (s *Session) Current() Actor {
	return s.current
}

// Direction returns the direction of play
func (s *Session) Direction() Direction {
	return s.direction
}
