// Package bot holds the computer policies that drive the non-human seat.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
)

// Strategy names a computer policy
type Strategy string

const (
	ActionFirst Strategy = "action-first"
	Random      Strategy = "random"
	Majority    Strategy = "majority"
)

// Strategies lists every policy New can build
var Strategies = []Strategy{ActionFirst, Random, Majority}

// ParseStrategy resolves a strategy name, ignoring case
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Strategies, s) {
		return s, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %s)", name, strategyList())
}

func strategyList() string {
	names := make([]string, len(Strategies))
	for i, s := range Strategies {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// New builds the agent for strategy
func New(strategy Strategy, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	if rng == nil {
		return nil, fmt.Errorf("bot %s: rng is required", strategy)
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix(string(strategy))
	switch strategy {
	case ActionFirst:
		return NewActionFirstBot(rng, logger), nil
	case Random:
		return NewRandBot(rng, logger), nil
	case Majority:
		return NewMajorityBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", strategy, strategyList())
	}
}

// legal returns the playable cards for view
func legal(view game.TurnView) []uno.Card {
	return uno.LegalCards(view.Hand, view.Top, view.ActiveColor)
}

func pick(rng *rand.Rand, cards []uno.Card) uno.Card {
	return cards[rng.IntN(len(cards))]
}

func randomColor(rng *rand.Rand) uno.Color {
	return uno.Colors[rng.IntN(len(uno.Colors))]
}
