package uno

import (
	"testing"

	"github.com/lox/uno-cli/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind struct {
	color Color
	value Value
}

func countKinds(cards []Card) map[kind]int {
	counts := make(map[kind]int)
	for _, c := range cards {
		counts[kind{c.Color, c.Value}]++
	}
	return counts
}

func TestNewDeckComposition(t *testing.T) {
	t.Parallel()

	cards := NewDeck()
	require.Len(t, cards, DeckSize)

	counts := countKinds(cards)
	for _, color := range Colors {
		assert.Equal(t, 1, counts[kind{color, Zero}], "%s 0", color)
		for value := One; value <= DrawTwo; value++ {
			assert.Equal(t, 2, counts[kind{color, value}], "%s %s", color, value)
		}
	}
	assert.Equal(t, 4, counts[kind{Wild, WildCard}])
	assert.Equal(t, 4, counts[kind{Wild, WildDrawFour}])
	assert.Len(t, counts, 4*13+2)
}

func TestNewDeckUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[CardID]bool)
	for _, c := range NewDeck() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Contains(t, seen, CardID("red-5-1"))
	assert.Contains(t, seen, CardID("red-5-2"))
	assert.NotContains(t, seen, CardID("red-0-2"))
	assert.Contains(t, seen, CardID("wild4-3"))
}

func TestShuffledDeckKeepsMultiset(t *testing.T) {
	t.Parallel()

	want := countKinds(NewDeck())
	for seed := int64(1); seed <= 20; seed++ {
		cards := NewShuffledDeck(randutil.New(seed))
		require.Len(t, cards, DeckSize)
		assert.Equal(t, want, countKinds(cards), "seed %d", seed)
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	t.Parallel()

	ordered := NewDeck()
	shuffled := NewShuffledDeck(randutil.New(3))
	assert.NotEqual(t, ordered, shuffled)

	again := NewShuffledDeck(randutil.New(3))
	assert.Equal(t, shuffled, again, "same seed must give same order")
}

func TestFindCard(t *testing.T) {
	t.Parallel()

	cards := NewDeck()
	idx := FindCard(cards, "blue-skip-2")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, Blue, cards[idx].Color)
	assert.Equal(t, Skip, cards[idx].Value)
	assert.Equal(t, -1, FindCard(cards, "purple-1-1"))
}
