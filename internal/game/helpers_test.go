package game

import (
	"slices"
	"testing"

	"github.com/lox/uno-cli/internal/randutil"
	"github.com/lox/uno-cli/uno"
	"github.com/stretchr/testify/require"
)

// stackedDeck returns a full deck with the given cards moved to the front
// in order. The remaining cards keep the uno.NewDeck order.
func stackedDeck(t *testing.T, ids ...uno.CardID) []uno.Card {
	t.Helper()

	rest := uno.NewDeck()
	front := make([]uno.Card, 0, len(ids))
	for _, id := range ids {
		idx := uno.FindCard(rest, id)
		require.GreaterOrEqual(t, idx, 0, "unknown card %s", id)
		front = append(front, rest[idx])
		rest = slices.Delete(rest, idx, idx+1)
	}
	return append(front, rest...)
}

// newStackedSession deals handSize cards each from ids: the player's hand
// first, then the computer's, then the opening discard.
func newStackedSession(t *testing.T, handSize int, rules Rules, ids ...uno.CardID) *Session {
	t.Helper()
	return NewSession(randutil.New(1),
		WithDeck(stackedDeck(t, ids...)),
		WithHandSize(handSize),
		WithRules(rules))
}

// exhaustDeck tucks all but keep deck cards under the discard pile so the
// card count is preserved
func exhaustDeck(s *Session, keep int) {
	moved := slices.Clone(s.deck[keep:])
	s.discard = append(moved, s.discard...)
	s.deck = s.deck[:keep]
}

func ids(cards []uno.Card) []uno.CardID {
	out := make([]uno.CardID, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// firstLegalAgent plays the first legal card in hand, or draws
type firstLegalAgent struct {
	color uno.Color
}

func (a firstLegalAgent) ChooseMove(view TurnView) Move {
	legal := uno.LegalCards(view.Hand, view.Top, view.ActiveColor)
	if len(legal) == 0 {
		return DrawMove()
	}
	return PlayMove(legal[0])
}

func (a firstLegalAgent) ChooseColor([]uno.Card) uno.Color {
	return a.color
}

// fixedAgent always returns the same move and color
type fixedAgent struct {
	move  Move
	color uno.Color
}

func (a fixedAgent) ChooseMove(TurnView) Move           { return a.move }
func (a fixedAgent) ChooseColor([]uno.Card) uno.Color { return a.color }
