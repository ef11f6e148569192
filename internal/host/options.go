package host

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/uno-cli/internal/game"
)

const (
	// DefaultThinkDelay is how long the computer waits before moving
	DefaultThinkDelay = time.Second
	// DefaultSkipDelay is used when the computer moves again after skipping
	// the player, so the player can see what happened
	DefaultSkipDelay = 1500 * time.Millisecond
)

// Option configures a Host
type Option func(*Host)

// WithClock sets the clock used to pace computer turns
func WithClock(clock quartz.Clock) Option {
	return func(h *Host) {
		h.clock = clock
	}
}

// WithLogger sets the host logger
func WithLogger(logger *log.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithRNG sets the source used to shuffle new games
func WithRNG(rng *rand.Rand) Option {
	return func(h *Host) {
		h.rng = rng
	}
}

// WithAgent sets the computer policy
func WithAgent(agent game.Agent) Option {
	return func(h *Host) {
		h.agent = agent
	}
}

// WithDelays sets the computer pacing. Zero delays make the computer move
// on the next clock tick.
func WithDelays(think, skip time.Duration) Option {
	return func(h *Host) {
		h.thinkDelay = think
		h.skipDelay = skip
	}
}

// WithSessionOptions are passed to game.NewSession for every new game
func WithSessionOptions(opts ...game.Option) Option {
	return func(h *Host) {
		h.sessionOpts = append(h.sessionOpts, opts...)
	}
}
