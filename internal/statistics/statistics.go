package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/uno-cli/internal/game"
)

// GameResult is the outcome of a single self-play game
type GameResult struct {
	Seed      uint64    // RNG seed for this game (for replay)
	Winner    game.Actor
	HasWinner bool // false when the game ended blocked
	Turns     int  // accepted turns, counting a wild and its color as one
	// CardsLeft is how many cards the loser still held. Blocked games count
	// both hands.
	CardsLeft int
	Draws     int // cards picked up by either actor, forced or voluntary
}

// Statistics aggregates self-play results
type Statistics struct {
	Games   int
	Wins    [2]int // indexed by game.Actor
	Blocked int

	SumTurns  float64
	SumTurns2 float64 // Sum of squares for variance calculation
	Turns     []float64

	SumCardsLeft int
	SumDraws     int
	MaxTurns     int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.HasWinner {
		s.Wins[result.Winner]++
	} else {
		s.Blocked++
	}

	turns := float64(result.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)
	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
	}

	s.SumCardsLeft += result.CardsLeft
	s.SumDraws += result.Draws
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	for i := range s.Wins {
		s.Wins[i] += other.Wins[i]
	}
	s.Blocked += other.Blocked
	s.SumTurns += other.SumTurns
	s.SumTurns2 += other.SumTurns2
	s.Turns = append(s.Turns, other.Turns...)
	s.SumCardsLeft += other.SumCardsLeft
	s.SumDraws += other.SumDraws
	s.MaxTurns = max(s.MaxTurns, other.MaxTurns)
}

// WinRate returns the fraction of games actor won
func (s *Statistics) WinRate(actor game.Actor) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[actor]) / float64(s.Games)
}

// WinRateInterval95 returns the normal-approximation 95% confidence
// interval for actor's win rate
func (s *Statistics) WinRateInterval95(actor game.Actor) (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate(actor)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanTurns returns the average game length in turns
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// MeanCardsLeft returns the average number of cards left in losing hands
func (s *Statistics) MeanCardsLeft() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumCardsLeft) / float64(s.Games)
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the tallies agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns array length (%d) does not match games count (%d)",
			len(s.Turns), s.Games)
	}
	if total := s.Wins[game.Player] + s.Wins[game.Computer] + s.Blocked; total != s.Games {
		return fmt.Errorf("outcomes (%d) do not match games count (%d)", total, s.Games)
	}
	return nil
}
