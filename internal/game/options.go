package game

import "github.com/lox/uno-cli/uno"

// Option configures a Session during creation.
type Option func(*sessionConfig)

// sessionConfig holds all configuration for creating a session.
type sessionConfig struct {
	deck     []uno.Card // If provided, dealt in order instead of shuffling
	handSize int        // Default: DefaultHandSize
	rules    Rules
}

// WithDeck deals from a pre-arranged deck instead of shuffling a new one.
// Cards are dealt from the front: the player's hand, then the computer's,
// then the opening discard.
func WithDeck(cards []uno.Card) Option {
	return func(c *sessionConfig) {
		c.deck = cards
	}
}

// WithHandSize changes how many cards each actor is dealt.
func WithHandSize(n int) Option {
	return func(c *sessionConfig) {
		if n > 0 {
			c.handSize = n
		}
	}
}

// WithRules enables house rules.
func WithRules(rules Rules) Option {
	return func(c *sessionConfig) {
		c.rules = rules
	}
}
