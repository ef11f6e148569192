package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
)

// ActionFirstBot prefers skip, reverse, draw2 and wild4 cards, picking
// uniformly among them, and otherwise plays any legal card. Wild colors are
// chosen at random.
type ActionFirstBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewActionFirstBot creates a new ActionFirstBot instance
func NewActionFirstBot(rng *rand.Rand, logger *log.Logger) *ActionFirstBot {
	return &ActionFirstBot{rng: rng, logger: logger}
}

func (b *ActionFirstBot) ChooseMove(view game.TurnView) game.Move {
	playable := legal(view)
	if len(playable) == 0 {
		b.logger.Debug("no legal card, drawing", "hand", len(view.Hand), "deck", view.DeckSize)
		return game.DrawMove()
	}

	var actions []uno.Card
	for _, card := range playable {
		if card.IsAction() {
			actions = append(actions, card)
		}
	}
	if len(actions) > 0 {
		card := pick(b.rng, actions)
		b.logger.Debug("playing action card", "card", card, "options", len(actions))
		return game.PlayMove(card)
	}

	card := pick(b.rng, playable)
	b.logger.Debug("playing card", "card", card, "options", len(playable))
	return game.PlayMove(card)
}

func (b *ActionFirstBot) ChooseColor([]uno.Card) uno.Color {
	return randomColor(b.rng)
}
