package game

import (
	"slices"

	"github.com/lox/uno-cli/internal/randutil"
	"github.com/lox/uno-cli/uno"
)

const (
	drawTwoCount  = 2
	drawFourCount = 4
)

// applyPlay moves the card at idx out of actor's hand and applies its
// effect. The card has already passed the legality check.
func (s *Session) applyPlay(idx int, actor Actor) Effect {
	card := s.hands[actor][idx]
	s.hands[actor] = slices.Delete(s.hands[actor], idx, idx+1)
	s.passes = 0

	target := s.nextSeat(actor)
	effect := Effect{Kind: EffectPlain, Actor: actor, Card: card, Target: target}

	if card.IsWild() {
		if len(s.hands[actor]) == 0 {
			// Going out on a wild ends the game; no color is needed.
			s.discard = append(s.discard, card)
			effect.Kind = EffectWild
			effect.Color = s.activeColor
			s.endTurn(actor, false)
			s.message = s.statusAfter(effect)
			return effect
		}
		s.pending = &PendingWild{Card: card, Initiator: actor}
		effect.Kind = EffectWildPending
		s.message = s.statusAfter(effect)
		return effect
	}

	s.discard = append(s.discard, card)
	s.activeColor = card.Color
	effect.Color = card.Color

	switch card.Value {
	case uno.Skip:
		effect.Kind = EffectSkip
		effect.Skipped = true
	case uno.Reverse:
		effect.Kind = EffectReverse
		s.direction = s.direction.Reversed()
		effect.Skipped = s.rules.ReverseSkips && len(s.seats) == 2
		// Direction changed, so recompute who is next.
		effect.Target = s.nextSeat(actor)
	case uno.DrawTwo:
		effect.Kind = EffectDrawTwo
		effect.Drawn = s.drawInto(target, drawTwoCount)
		effect.Skipped = true
	}

	s.endTurn(actor, effect.Skipped)
	s.message = s.statusAfter(effect)
	return effect
}

// resolveWild applies the color choice for the pending wild
func (s *Session) resolveWild(color uno.Color) Effect {
	pending := *s.pending
	s.pending = nil
	s.discard = append(s.discard, pending.Card)
	s.activeColor = color

	actor := pending.Initiator
	target := s.nextSeat(actor)
	effect := Effect{Kind: EffectWild, Actor: actor, Card: pending.Card, Target: target, Color: color}

	if pending.Card.Value == uno.WildDrawFour {
		effect.Kind = EffectWildDrawFour
		effect.Drawn = s.drawInto(target, drawFourCount)
		effect.Skipped = true
	}

	s.endTurn(actor, effect.Skipped)
	s.message = s.statusAfter(effect)
	return effect
}

// drawInto moves up to n cards from the deck into actor's hand and returns
// how many were actually drawn
func (s *Session) drawInto(actor Actor, n int) int {
	drawn := 0
	for range n {
		if !s.refill() {
			break
		}
		s.drawOne(actor)
		drawn++
	}
	return drawn
}

// drawOne moves the front card of the deck to actor's hand. Callers must
// have checked CanDraw or refill.
func (s *Session) drawOne(actor Actor) uno.Card {
	s.refill()
	card := s.deck[0]
	s.deck = s.deck[1:]
	s.hands[actor] = append(s.hands[actor], card)
	return card
}

// refill reports whether the deck has a card, reshuffling the discard pile
// into it first when the house rule allows
func (s *Session) refill() bool {
	if len(s.deck) > 0 {
		return true
	}
	if !s.rules.Reshuffle || len(s.discard) < 2 {
		return false
	}

	top := s.discard[len(s.discard)-1]
	s.deck = slices.Clone(s.discard[:len(s.discard)-1])
	s.discard = []uno.Card{top}
	uno.Shuffle(randutil.Derive(s.seed, s.reshuffles), s.deck)
	s.reshuffles++
	return true
}
