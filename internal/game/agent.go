package game

import (
	"fmt"

	"github.com/lox/uno-cli/uno"
)

// TurnView is everything an agent may look at when choosing a move
type TurnView struct {
	Hand        []uno.Card
	Top         uno.Card
	ActiveColor uno.Color
	DeckSize    int
}

// Move is an agent's decision: play Card, or draw when Draw is set
type Move struct {
	Card uno.Card
	Draw bool
}

// PlayMove returns a move that plays card
func PlayMove(card uno.Card) Move {
	return Move{Card: card}
}

// DrawMove returns a move that draws a card
func DrawMove() Move {
	return Move{Draw: true}
}

// Agent makes decisions for a seat. Agents only decide; the session
// validates and applies.
type Agent interface {
	ChooseMove(view TurnView) Move
	ChooseColor(hand []uno.Card) uno.Color
}

// TurnView builds the agent view for actor
func (s *Session) TurnView(actor Actor) TurnView {
	return TurnView{
		Hand:        s.Hand(actor),
		Top:         s.Top(),
		ActiveColor: s.activeColor,
		DeckSize:    len(s.deck),
	}
}

// PlayTurn lets agent take actor's whole turn: a play (with its color
// choice when the card is wild), a draw, or a pass when nothing can be
// drawn. The effects are returned in the order they happened.
func (s *Session) PlayTurn(actor Actor, agent Agent) (*Session, []Effect, error) {
	if err := s.checkTurn(actor); err != nil {
		return s, nil, err
	}

	move := agent.ChooseMove(s.TurnView(actor))
	if move.Draw {
		if !s.CanDraw() {
			next, err := s.Pass(actor)
			if err != nil {
				return s, nil, err
			}
			return next, []Effect{{Kind: EffectPass, Actor: actor, Target: s.nextSeat(actor), Color: s.activeColor}}, nil
		}
		next, card, err := s.DrawCard(actor)
		if err != nil {
			return s, nil, err
		}
		return next, []Effect{{Kind: EffectDraw, Actor: actor, Card: card, Target: actor, Color: s.activeColor, Drawn: 1}}, nil
	}

	next, effect, err := s.PlayCard(move.Card.ID, actor)
	if err != nil {
		return s, nil, fmt.Errorf("%s chose %s: %w", actor, move.Card, err)
	}
	effects := []Effect{effect}

	if next.Phase() == AwaitingColorChoice {
		color := agent.ChooseColor(next.Hand(actor))
		resolved, effect, err := next.ChooseColor(color)
		if err != nil {
			return s, nil, fmt.Errorf("%s chose color %s: %w", actor, color, err)
		}
		next = resolved
		effects = append(effects, effect)
	}

	return next, effects, nil
}
