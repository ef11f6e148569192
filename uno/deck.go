package uno

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a full deck
const DeckSize = 108

// NewDeck builds the full 108 card deck in a fixed order. Each color has one
// zero and two of every other value; there are four wilds and four wild
// draw fours.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		for value := Zero; value <= DrawTwo; value++ {
			cards = append(cards, NewCard(color, value, 1))
			if value != Zero {
				cards = append(cards, NewCard(color, value, 2))
			}
		}
	}
	for i := range 4 {
		cards = append(cards, NewWildCard(WildCard, i))
		cards = append(cards, NewWildCard(WildDrawFour, i))
	}
	return cards
}

// Shuffle shuffles cards in place using Fisher-Yates
func Shuffle(rng *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NewShuffledDeck returns a freshly shuffled full deck
func NewShuffledDeck(rng *rand.Rand) []Card {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	cards := NewDeck()
	Shuffle(rng, cards)
	return cards
}

// FindCard returns the index of the card with the given ID, or -1
func FindCard(cards []Card, id CardID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
