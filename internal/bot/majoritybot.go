package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
)

// MajorityBot keeps its options open. It plays action cards first like
// ActionFirstBot, otherwise the legal card that leaves the most follow-up
// plays in hand, and names the color it holds most of.
type MajorityBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewMajorityBot creates a new MajorityBot instance
func NewMajorityBot(rng *rand.Rand, logger *log.Logger) *MajorityBot {
	return &MajorityBot{rng: rng, logger: logger}
}

func (m *MajorityBot) ChooseMove(view game.TurnView) game.Move {
	playable := legal(view)
	if len(playable) == 0 {
		return game.DrawMove()
	}

	var actions []uno.Card
	for _, card := range playable {
		if card.IsAction() {
			actions = append(actions, card)
		}
	}
	if len(actions) > 0 {
		return game.PlayMove(pick(m.rng, actions))
	}

	best, bestSpare := playable[0], -1
	for _, candidate := range playable {
		spare := 0
		for _, held := range view.Hand {
			if held.ID != candidate.ID && uno.IsLegalPlay(held, candidate, candidate.Color) {
				spare++
			}
		}
		if spare > bestSpare {
			best, bestSpare = candidate, spare
		}
	}
	m.logger.Debug("playing card", "card", best, "follow_ups", bestSpare)
	return game.PlayMove(best)
}

// ChooseColor names the most common color in hand, breaking ties in
// uno.Colors order. An all-wild hand gets a random color.
func (m *MajorityBot) ChooseColor(hand []uno.Card) uno.Color {
	counts := make(map[uno.Color]int, len(uno.Colors))
	for _, card := range hand {
		if card.Color.IsNamed() {
			counts[card.Color]++
		}
	}

	best, bestCount := uno.Color(0), 0
	for _, color := range uno.Colors {
		if counts[color] > bestCount {
			best, bestCount = color, counts[color]
		}
	}
	if bestCount == 0 {
		return randomColor(m.rng)
	}
	return best
}
