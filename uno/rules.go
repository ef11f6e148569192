package uno

// IsLegalPlay reports whether card may be played on top of the discard pile.
// Wilds are always legal. Any other card must match the active color or the
// value of the top card; a wild on top never matches by value since no
// colored card carries a wild value.
func IsLegalPlay(card, top Card, activeColor Color) bool {
	if card.IsWild() {
		return true
	}
	return card.Color == activeColor || card.Value == top.Value
}

// LegalCards filters hand down to the cards that may be played
func LegalCards(hand []Card, top Card, activeColor Color) []Card {
	var legal []Card
	for _, c := range hand {
		if IsLegalPlay(c, top, activeColor) {
			legal = append(legal, c)
		}
	}
	return legal
}
