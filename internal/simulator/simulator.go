// Package simulator plays bot-vs-bot games headlessly to compare computer
// strategies and to shake out rule bugs over many deals.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/randutil"
	"github.com/lox/uno-cli/internal/statistics"
	"github.com/lox/uno-cli/uno"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxTurns = 2000
	DefaultTimeout  = 5 * time.Second
)

var ErrTurnLimit = errors.New("simulator: turn limit reached")

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int
	Seed     int64
	Player   bot.Strategy // drives the human seat
	Computer bot.Strategy
	Session  []game.Option
	MaxTurns int
	Timeout  time.Duration // per game
	Logger   *log.Logger
}

// Simulator runs UNO self-play
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Player == "" {
		config.Player = bot.ActionFirst
	}
	if config.Computer == "" {
		config.Computer = bot.ActionFirst
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// GameSeed returns the seed game n is dealt from
func (s *Simulator) GameSeed(n int) uint64 {
	return randutil.Derive(uint64(s.config.Seed), n).Uint64()
}

// Run plays every configured game across the worker pool. The first game
// that errors or hangs cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", s.config.Games)
	}

	workers := min(s.config.Workers, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	results := make([]statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stats := &results[w]
			for n := w; n < s.config.Games; n += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playGameWithTimeout(ctx, s.GameSeed(n))
				if err != nil {
					return fmt.Errorf("game %d: %w", n+1, err)
				}
				stats.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for i := range results {
		total.Merge(&results[i])
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"games", total.Games,
		"player_wins", total.Wins[game.Player],
		"computer_wins", total.Wins[game.Computer],
		"blocked", total.Blocked)
	return total, nil
}

// playGameWithTimeout runs a single game with timeout protection
func (s *Simulator) playGameWithTimeout(ctx context.Context, seed uint64) (statistics.GameResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	type outcome struct {
		result statistics.GameResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := s.PlayGame(seed)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return statistics.GameResult{}, fmt.Errorf("game timed out after %v (seed: %d): %w", s.config.Timeout, seed, ctx.Err())
	}
}

// PlayGame deals from seed and lets the two strategies play it out
func (s *Simulator) PlayGame(seed uint64) (statistics.GameResult, error) {
	rng := randutil.FromUint64(seed)
	session := game.NewSession(rng, s.config.Session...)

	strategies := [2]bot.Strategy{game.Player: s.config.Player, game.Computer: s.config.Computer}
	var agents [2]game.Agent
	for actor, strategy := range strategies {
		agent, err := bot.New(strategy, randutil.Derive(seed, actor), s.logger)
		if err != nil {
			return statistics.GameResult{}, err
		}
		agents[actor] = agent
	}

	result := statistics.GameResult{Seed: seed}
	for !session.IsOver() {
		if result.Turns >= s.config.MaxTurns {
			return result, fmt.Errorf("%w after %d turns (seed: %d)", ErrTurnLimit, result.Turns, seed)
		}

		actor := session.Current()
		next, effects, err := session.PlayTurn(actor, agents[actor])
		if err != nil {
			return result, fmt.Errorf("turn %d (seed: %d): %w", result.Turns+1, seed, err)
		}
		if total := next.TotalCards(); total != uno.DeckSize {
			return result, fmt.Errorf("turn %d (seed: %d): card count %d, want %d", result.Turns+1, seed, total, uno.DeckSize)
		}

		for _, e := range effects {
			result.Draws += e.Drawn
		}
		result.Turns++
		session = next
	}

	result.Winner, result.HasWinner = session.Winner()
	if result.HasWinner {
		result.CardsLeft = session.HandSize(otherActor(result.Winner))
	} else {
		result.CardsLeft = session.HandSize(game.Player) + session.HandSize(game.Computer)
	}

	s.logger.Debug("Game finished",
		"seed", seed,
		"winner", result.Winner,
		"has_winner", result.HasWinner,
		"turns", result.Turns)
	return result, nil
}

func otherActor(a game.Actor) game.Actor {
	if a == game.Player {
		return game.Computer
	}
	return game.Player
}

// PrintSummary writes a human-readable report of stats to logger
func PrintSummary(logger *log.Logger, stats *statistics.Statistics, player, computer bot.Strategy) {
	pLo, pHi := stats.WinRateInterval95(game.Player)
	cLo, cHi := stats.WinRateInterval95(game.Computer)

	logger.Info(fmt.Sprintf("%d games: %s (player) vs %s (computer)", stats.Games, player, computer))
	logger.Info(fmt.Sprintf("Player wins:   %5d  %5.1f%%  [%.1f%%, %.1f%%]",
		stats.Wins[game.Player], stats.WinRate(game.Player)*100, pLo*100, pHi*100))
	logger.Info(fmt.Sprintf("Computer wins: %5d  %5.1f%%  [%.1f%%, %.1f%%]",
		stats.Wins[game.Computer], stats.WinRate(game.Computer)*100, cLo*100, cHi*100))
	logger.Info(fmt.Sprintf("Blocked:       %5d", stats.Blocked))
	logger.Info(fmt.Sprintf("Turns: mean %.1f, median %.1f, p95 %.1f, max %d (sd %.1f)",
		stats.MeanTurns(), stats.Median(), stats.Percentile(0.95), stats.MaxTurns, stats.StdDev()))
	logger.Info(fmt.Sprintf("Cards left in losing hand: %.1f on average", stats.MeanCardsLeft()))
}
