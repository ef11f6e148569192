package statistics

import (
	"testing"

	"github.com/lox/uno-cli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.MeanTurns())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.WinRate(game.Player))
	lo, hi := stats.WinRateInterval95(game.Computer)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Error(t, stats.Validate())
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 1, Winner: game.Player, HasWinner: true, Turns: 10, CardsLeft: 3, Draws: 4})
	stats.Add(GameResult{Seed: 2, Winner: game.Computer, HasWinner: true, Turns: 20, CardsLeft: 5})
	stats.Add(GameResult{Seed: 3, Turns: 30, CardsLeft: 7, Draws: 2})

	require.NoError(t, stats.Validate())
	assert.Equal(t, 3, stats.Games)
	assert.Equal(t, 1, stats.Wins[game.Player])
	assert.Equal(t, 1, stats.Wins[game.Computer])
	assert.Equal(t, 1, stats.Blocked)
	assert.Equal(t, 30, stats.MaxTurns)
	assert.Equal(t, 6, stats.SumDraws)

	assert.InDelta(t, 20.0, stats.MeanTurns(), 1e-9)
	assert.InDelta(t, 100.0, stats.Variance(), 1e-9)
	assert.InDelta(t, 10.0, stats.StdDev(), 1e-9)
	assert.InDelta(t, 20.0, stats.Median(), 1e-9)
	assert.InDelta(t, 5.0, stats.MeanCardsLeft(), 1e-9)
	assert.InDelta(t, 1.0/3, stats.WinRate(game.Player), 1e-9)
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, turns := range []int{40, 10, 30, 20} {
		stats.Add(GameResult{Winner: game.Player, HasWinner: true, Turns: turns})
	}

	assert.InDelta(t, 10.0, stats.Percentile(0), 1e-9)
	assert.InDelta(t, 25.0, stats.Percentile(0.5), 1e-9)
	assert.InDelta(t, 40.0, stats.Percentile(1), 1e-9)
}

func TestStatistics_WinRateInterval(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		stats.Add(GameResult{Winner: game.Actor(i % 2), HasWinner: true, Turns: 12})
	}

	lo, hi := stats.WinRateInterval95(game.Player)
	assert.InDelta(t, 0.402, lo, 1e-3)
	assert.InDelta(t, 0.598, hi, 1e-3)
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.Add(GameResult{Winner: game.Player, HasWinner: true, Turns: 8})
	b := &Statistics{}
	b.Add(GameResult{Winner: game.Computer, HasWinner: true, Turns: 16})
	b.Add(GameResult{Turns: 40})

	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Games)
	assert.Equal(t, 1, a.Blocked)
	assert.Equal(t, 40, a.MaxTurns)
	assert.Len(t, a.Turns, 3)
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Winner: game.Player, HasWinner: true, Turns: 5})
	stats.Wins[game.Computer]++

	assert.Error(t, stats.Validate())
}
