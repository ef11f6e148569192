package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
)

// RandBot plays a uniformly random legal card
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) ChooseMove(view game.TurnView) game.Move {
	playable := legal(view)
	if len(playable) == 0 {
		return game.DrawMove()
	}
	card := pick(r.rng, playable)
	r.logger.Debug("rand-bot random card", "card", card)
	return game.PlayMove(card)
}

func (r *RandBot) ChooseColor([]uno.Card) uno.Color {
	return randomColor(r.rng)
}
