package uno

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegalPlay(t *testing.T) {
	t.Parallel()

	redFive := NewCard(Red, Five, 1)
	redSkip := NewCard(Red, Skip, 1)
	wild := NewWildCard(WildCard, 0)

	tests := []struct {
		name   string
		card   Card
		top    Card
		active Color
		want   bool
	}{
		{"same color", NewCard(Red, Two, 1), redFive, Red, true},
		{"same number other color", NewCard(Blue, Five, 1), redFive, Red, true},
		{"same action other color", NewCard(Blue, Skip, 2), redSkip, Red, true},
		{"no match", NewCard(Blue, Two, 1), redFive, Red, false},
		{"wild on anything", wild, redFive, Red, true},
		{"wild4 on anything", NewWildCard(WildDrawFour, 1), redSkip, Red, true},
		{"active color overrides top color", NewCard(Green, Two, 1), wild, Green, true},
		{"wild on top never matches by value", NewCard(Blue, Two, 1), wild, Green, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalPlay(tt.card, tt.top, tt.active))
		})
	}
}

func TestLegalCards(t *testing.T) {
	t.Parallel()

	hand := []Card{
		NewCard(Red, One, 1),
		NewCard(Blue, Seven, 1),
		NewCard(Yellow, Five, 2),
		NewWildCard(WildCard, 2),
	}
	legal := LegalCards(hand, NewCard(Green, Five, 1), Red)

	require.Len(t, legal, 3)
	assert.Equal(t, CardID("red-1-1"), legal[0].ID)
	assert.Equal(t, CardID("yellow-5-2"), legal[1].ID)
	assert.Equal(t, CardID("wild-2"), legal[2].ID)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Color{"red": Red, "B": Blue, " green ": Green, "y": Yellow} {
		got, err := ParseColor(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseColor("wild")
	assert.Error(t, err)
	_, err = ParseColor("purple")
	assert.Error(t, err)
}

func TestCardJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewCard(Yellow, DrawTwo, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"yellow-draw2-2","color":"yellow","value":"draw2"}`, string(data))

	var decoded Card
	require.NoError(t, json.Unmarshal([]byte(`{"id":"wild4-0","color":"wild","value":"wild4"}`), &decoded))
	assert.Equal(t, NewWildCard(WildDrawFour, 0), decoded)
}

func TestCardPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, NewCard(Red, Skip, 1).IsAction())
	assert.True(t, NewWildCard(WildDrawFour, 0).IsAction())
	assert.False(t, NewWildCard(WildCard, 0).IsAction())
	assert.False(t, NewCard(Red, Nine, 1).IsAction())
	assert.Equal(t, "red 9", NewCard(Red, Nine, 1).String())
	assert.Equal(t, "wild4", NewWildCard(WildDrawFour, 0).String())
}
