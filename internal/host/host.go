// Package host owns the live game for one human player. It serialises
// intents from a renderer, paces the computer's turns on a clock and
// publishes every state change to subscribers.
package host

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/randutil"
	"github.com/lox/uno-cli/uno"
)

var (
	ErrNotStarted     = errors.New("host: no game in progress")
	ErrAlreadyStarted = errors.New("host: game already started")
	ErrClosed         = errors.New("host: closed")
)

// Host runs one game at a time between the human player and a computer
// agent
type Host struct {
	mu sync.Mutex

	id      string
	gameID  string
	session *game.Session

	clock       quartz.Clock
	logger      *log.Logger
	rng         *rand.Rand
	agent       game.Agent
	sessionOpts []game.Option
	thinkDelay  time.Duration
	skipDelay   time.Duration

	// generation is bumped on every new game; delayed computer steps from
	// an older generation are dropped
	generation uint64
	timer      *quartz.Timer
	closed     bool

	bus *eventBus
}

// New creates a host. No game is running until Start is called.
func New(opts ...Option) *Host {
	h := &Host{
		id:         uuid.Must(uuid.NewV7()).String(),
		clock:      quartz.NewReal(),
		thinkDelay: DefaultThinkDelay,
		skipDelay:  DefaultSkipDelay,
		bus:        newEventBus(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = log.Default()
	}
	h.logger = h.logger.WithPrefix("host")
	if h.rng == nil {
		h.rng = randutil.New(randutil.SeedOrNow(0))
	}
	if h.agent == nil {
		h.agent = bot.NewActionFirstBot(h.rng, h.logger.WithPrefix("computer"))
	}
	return h
}

// ID returns the host identifier used in logs
func (h *Host) ID() string {
	return h.id
}

// GameID returns the identifier of the current game, or "" before Start
func (h *Host) GameID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gameID
}

// Subscribe registers sub for events and returns a function that removes it
func (h *Host) Subscribe(sub Subscriber) func() {
	return h.bus.subscribe(sub)
}

// Start deals the first game
func (h *Host) Start() (game.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return game.Snapshot{}, ErrClosed
	}
	if h.session != nil {
		return h.session.Snapshot(), ErrAlreadyStarted
	}
	return h.newGameLocked(), nil
}

// Restart abandons the current game, if any, and deals a new one. A
// computer step scheduled for the old game never runs.
func (h *Host) Restart() (game.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return game.Snapshot{}, ErrClosed
	}
	if h.session != nil {
		h.logger.Info("Restarting game", "game_id", h.gameID)
	}
	return h.newGameLocked(), nil
}

func (h *Host) newGameLocked() game.Snapshot {
	h.stopTimerLocked()
	h.generation++
	h.gameID = uuid.Must(uuid.NewV7()).String()
	h.session = game.NewSession(h.rng, h.sessionOpts...)

	h.logger.Info("Game started",
		"game_id", h.gameID,
		"top", h.session.Top(),
		"generation", h.generation)

	h.publishLocked(EventStart, nil)
	return h.session.Snapshot()
}

// PlayCard plays a card from the player's hand
func (h *Host) PlayCard(id uno.CardID) (game.Snapshot, error) {
	return h.apply(EventPlay, func(s *game.Session) (*game.Session, []game.Effect, error) {
		next, effect, err := s.PlayCard(id, game.Player)
		return next, []game.Effect{effect}, err
	})
}

// ChooseColor resolves the player's pending wild
func (h *Host) ChooseColor(color uno.Color) (game.Snapshot, error) {
	return h.apply(EventColor, func(s *game.Session) (*game.Session, []game.Effect, error) {
		next, effect, err := s.ChooseColor(color)
		return next, []game.Effect{effect}, err
	})
}

// DrawCard draws a card for the player
func (h *Host) DrawCard() (game.Snapshot, error) {
	return h.apply(EventDraw, func(s *game.Session) (*game.Session, []game.Effect, error) {
		next, card, err := s.DrawCard(game.Player)
		effect := game.Effect{
			Kind:   game.EffectDraw,
			Actor:  game.Player,
			Card:   card,
			Target: game.Player,
			Color:  s.ActiveColor(),
			Drawn:  1,
		}
		return next, []game.Effect{effect}, err
	})
}

// Pass gives up the player's turn once nothing can be drawn
func (h *Host) Pass() (game.Snapshot, error) {
	return h.apply(EventPass, func(s *game.Session) (*game.Session, []game.Effect, error) {
		next, err := s.Pass(game.Player)
		effect := game.Effect{Kind: game.EffectPass, Actor: game.Player, Target: game.Computer, Color: s.ActiveColor()}
		return next, []game.Effect{effect}, err
	})
}

// Snapshot returns the current game state
func (h *Host) Snapshot() (game.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return game.Snapshot{}, ErrNotStarted
	}
	return h.session.Snapshot(), nil
}

// Close stops any pending computer step and drops all subscribers
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	h.generation++
	h.stopTimerLocked()
	h.bus.clear()
	h.logger.Debug("Host closed", "host_id", h.id)
	return nil
}

// apply runs a player intent against the current session. Rejected intents
// leave the session untouched and publish nothing.
func (h *Host) apply(kind EventType, intent func(*game.Session) (*game.Session, []game.Effect, error)) (game.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return game.Snapshot{}, ErrClosed
	}
	if h.session == nil {
		return game.Snapshot{}, ErrNotStarted
	}

	next, effects, err := intent(h.session)
	if err != nil {
		h.logger.Debug("Rejected intent", "intent", kind, "error", err)
		return h.session.Snapshot(), fmt.Errorf("%s: %w", kind, err)
	}

	h.session = next
	h.publishLocked(kind, effects)
	h.scheduleLocked(effects)
	return next.Snapshot(), nil
}

// scheduleLocked arms the computer step if the computer is on turn. After
// the computer skipped the player the longer delay is used.
func (h *Host) scheduleLocked(last []game.Effect) {
	if h.session.Phase() != game.ComputerThinking {
		return
	}

	delay := h.thinkDelay
	for _, e := range last {
		if e.Actor == game.Computer && e.Skipped {
			delay = h.skipDelay
		}
	}

	h.stopTimerLocked()
	gen := h.generation
	h.timer = h.clock.AfterFunc(delay, func() {
		h.runComputerTurn(gen)
	}, "host", "computer")
}

func (h *Host) stopTimerLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

// runComputerTurn is the delayed computer step. It is a no-op when the game
// it was scheduled for has been replaced.
func (h *Host) runComputerTurn(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || gen != h.generation || h.session == nil {
		h.logger.Debug("Discarding stale computer step", "generation", gen, "current", h.generation)
		return
	}
	h.timer = nil
	if h.session.Phase() != game.ComputerThinking {
		return
	}

	next, effects, err := h.session.PlayTurn(game.Computer, h.agent)
	if err != nil {
		// The agent chose something the rules refuse. Fall back to drawing
		// or passing so the game cannot stall.
		h.logger.Warn("Computer move rejected", "error", err)
		next, effects, err = h.session.PlayTurn(game.Computer, fallbackAgent{h.agent})
		if err != nil {
			h.logger.Error("Computer cannot move", "error", err)
			return
		}
	}

	for _, e := range effects {
		h.logger.Debug("Computer moved", "effect", e.Kind, "card", e.Card, "color", e.Color)
	}

	h.session = next
	h.publishLocked(EventComputer, hideComputerDraws(effects))
	h.scheduleLocked(effects)
}

func (h *Host) publishLocked(kind EventType, effects []game.Effect) {
	event := Event{
		Type:      kind,
		GameID:    h.gameID,
		Effects:   effects,
		Snapshot:  h.session.Snapshot(),
		Timestamp: h.clock.Now(),
	}
	if h.session.IsOver() {
		winner, ok := h.session.Winner()
		h.logger.Info("Game over", "game_id", h.gameID, "winner", winner, "has_winner", ok)
	}
	h.bus.publish(event)
}

// hideComputerDraws strips the identity of cards the computer drew
func hideComputerDraws(effects []game.Effect) []game.Effect {
	out := make([]game.Effect, len(effects))
	for i, e := range effects {
		if e.Kind == game.EffectDraw && e.Actor == game.Computer {
			e.Card = uno.Card{}
		}
		out[i] = e
	}
	return out
}

// fallbackAgent plays the first legal card or draws, keeping the wrapped
// agent's color choice
type fallbackAgent struct {
	game.Agent
}

func (f fallbackAgent) ChooseMove(view game.TurnView) game.Move {
	legal := uno.LegalCards(view.Hand, view.Top, view.ActiveColor)
	if len(legal) == 0 {
		return game.DrawMove()
	}
	return game.PlayMove(legal[0])
}
