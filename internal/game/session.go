package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/uno-cli/uno"
)

// DefaultHandSize is the number of cards dealt to each actor
const DefaultHandSize = 7

// Rules are optional house rules. The zero value plays the game as the
// classic browser version did.
type Rules struct {
	// ReverseSkips makes a reverse act as a skip when exactly two seats
	// play. Without it a reverse flips direction and the turn passes to the
	// opponent like any plain card.
	ReverseSkips bool

	// Reshuffle turns the discard pile, minus its top card, back into the
	// deck once the deck runs out.
	Reshuffle bool
}

// PendingWild is a wild card held out of the discard pile until its player
// picks a color
type PendingWild struct {
	Card      uno.Card `json:"card"`
	Initiator Actor    `json:"initiator"`
}

// Session is the complete state of one game. Sessions are values: every
// operation returns a new *Session and leaves its receiver untouched.
type Session struct {
	seats       []Actor
	deck        []uno.Card
	hands       [numActors][]uno.Card
	discard     []uno.Card
	activeColor uno.Color
	direction   Direction
	current     Actor
	pending     *PendingWild

	over      bool
	winner    Actor
	hasWinner bool
	passes    int
	message   string

	rules      Rules
	seed       uint64
	reshuffles int
}

// NewSession shuffles a fresh deck, deals each actor a hand and flips the
// first card. The player moves first.
func NewSession(rng *rand.Rand, opts ...Option) *Session {
	if rng == nil {
		panic("rng is required for session creation")
	}

	cfg := &sessionConfig{
		handSize: DefaultHandSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var deck []uno.Card
	if cfg.deck != nil {
		deck = slices.Clone(cfg.deck)
	} else {
		deck = uno.NewShuffledDeck(rng)
	}
	if len(deck) < cfg.handSize*numActors+1 {
		panic("deck too small to deal")
	}

	s := &Session{
		seats:     []Actor{Player, Computer},
		direction: Clockwise,
		current:   Player,
		rules:     cfg.rules,
		seed:      rng.Uint64(),
	}

	for _, actor := range s.seats {
		s.hands[actor] = slices.Clone(deck[:cfg.handSize])
		deck = deck[cfg.handSize:]
	}

	// Wilds can't set an opening color; they go to the bottom.
	flipped := false
	for range len(deck) {
		top := deck[0]
		deck = deck[1:]
		if !top.IsWild() {
			s.discard = []uno.Card{top}
			s.activeColor = top.Color
			flipped = true
			break
		}
		deck = append(deck, top)
	}
	if !flipped {
		panic("deck has no colored card to flip")
	}

	s.deck = slices.Clone(deck)
	s.message = "Your turn! Play a card or draw."
	return s
}

// clone returns a deep copy safe to mutate
func (s *Session) clone() *Session {
	c := *s
	c.deck = slices.Clone(s.deck)
	for i := range s.hands {
		c.hands[i] = slices.Clone(s.hands[i])
	}
	c.discard = slices.Clone(s.discard)
	if s.pending != nil {
		pending := *s.pending
		c.pending = &pending
	}
	return &c
}

// Top returns the top card of the discard pile
func (s *Session) Top() uno.Card {
	return s.discard[len(s.discard)-1]
}

// ActiveColor returns the color the next non-wild play must match
func (s *Session) ActiveColor() uno.Color {
	return s.activeColor
}

// Hand returns a copy of actor's hand
func (s *Session) Hand(actor Actor) []uno.Card {
	if !actor.valid() {
		return nil
	}
	return slices.Clone(s.hands[actor])
}

// HandSize returns the number of cards actor holds
func (s *Session) HandSize(actor Actor) int {
	if !actor.valid() {
		return 0
	}
	return len(s.hands[actor])
}

// DeckSize returns the number of cards left to draw
func (s *Session) DeckSize() int {
	return len(s.deck)
}

// DiscardSize returns the number of cards on the discard pile
func (s *Session) DiscardSize() int {
	return len(s.discard)
}

// Pending returns the wild awaiting a color choice, if any
func (s *Session) Pending() (PendingWild, bool) {
	if s.pending == nil {
		return PendingWild{}, false
	}
	return *s.pending, true
}

// Message returns the latest status line for renderers
func (s *Session) Message() string {
	return s.message
}

// Rules returns the house rules in effect
func (s *Session) Rules() Rules {
	return s.rules
}

// TotalCards counts every card the session holds. It is always uno.DeckSize
// for a full deck.
func (s *Session) TotalCards() int {
	total := len(s.deck) + len(s.discard)
	for _, hand := range s.hands {
		total += len(hand)
	}
	if s.pending != nil {
		total++
	}
	return total
}

// LegalCards returns the cards actor could legally play right now
func (s *Session) LegalCards(actor Actor) []uno.Card {
	if !actor.valid() {
		return nil
	}
	return uno.LegalCards(s.hands[actor], s.Top(), s.activeColor)
}

// CanDraw reports whether a draw would produce a card, counting a
// reshuffle of the discard pile when that house rule is on.
func (s *Session) CanDraw() bool {
	return len(s.deck) > 0 || (s.rules.Reshuffle && len(s.discard) > 1)
}

// PlayCard plays the card with the given ID from actor's hand. Wilds move
// the game to AwaitingColorChoice; everything else resolves immediately and
// passes the turn.
func (s *Session) PlayCard(id uno.CardID, actor Actor) (*Session, Effect, error) {
	if err := s.checkTurn(actor); err != nil {
		return s, Effect{}, err
	}

	idx := uno.FindCard(s.hands[actor], id)
	if idx < 0 {
		return s, Effect{}, fmt.Errorf("%w: %s", ErrCardNotInHand, id)
	}
	card := s.hands[actor][idx]
	if !uno.IsLegalPlay(card, s.Top(), s.activeColor) {
		return s, Effect{}, fmt.Errorf("%w: cannot play %s on %s while %s is active",
			ErrIllegalMove, card, s.Top(), s.activeColor)
	}

	next := s.clone()
	effect := next.applyPlay(idx, actor)
	return next, effect, nil
}

// ChooseColor resolves the pending wild
func (s *Session) ChooseColor(color uno.Color) (*Session, Effect, error) {
	if s.over {
		return s, Effect{}, ErrGameOver
	}
	if s.pending == nil {
		return s, Effect{}, ErrNoPendingWild
	}
	if !color.IsNamed() {
		return s, Effect{}, fmt.Errorf("%w: %s", ErrInvalidColor, color)
	}

	next := s.clone()
	effect := next.resolveWild(color)
	return next, effect, nil
}

// DrawCard draws one card for actor and passes the turn
func (s *Session) DrawCard(actor Actor) (*Session, uno.Card, error) {
	if err := s.checkTurn(actor); err != nil {
		return s, uno.Card{}, err
	}
	if !s.CanDraw() {
		return s, uno.Card{}, ErrDeckEmpty
	}

	next := s.clone()
	card := next.drawOne(actor)
	next.passes = 0
	next.endTurn(actor, false)
	next.message = next.statusAfter(Effect{Kind: EffectDraw, Actor: actor, Drawn: 1})
	return next, card, nil
}

// Pass gives up the turn. It is only allowed when nothing can be drawn and
// actor holds no legal card. If every seat passes in a row the game ends
// without a winner.
func (s *Session) Pass(actor Actor) (*Session, error) {
	if err := s.checkTurn(actor); err != nil {
		return s, err
	}
	if s.CanDraw() {
		return s, fmt.Errorf("%w: cards remain to draw", ErrCannotPass)
	}
	if len(s.LegalCards(actor)) > 0 {
		return s, fmt.Errorf("%w: a legal card is in hand", ErrCannotPass)
	}

	next := s.clone()
	next.passes++
	if next.passes >= len(next.seats) {
		next.over = true
		next.message = "No moves left. Game blocked."
		return next, nil
	}
	next.current = next.nextSeat(actor)
	next.message = next.statusAfter(Effect{Kind: EffectPass, Actor: actor})
	return next, nil
}
