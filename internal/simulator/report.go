package simulator

import (
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/statistics"
)

// Report is the machine-readable summary written by `uno simulate --out`
type Report struct {
	Seed     int64        `json:"seed"`
	Games    int          `json:"games"`
	Player   bot.Strategy `json:"player"`
	Computer bot.Strategy `json:"computer"`

	PlayerWins   int     `json:"player_wins"`
	ComputerWins int     `json:"computer_wins"`
	Blocked      int     `json:"blocked"`
	PlayerRate   float64 `json:"player_win_rate"`
	ComputerRate float64 `json:"computer_win_rate"`

	MeanTurns     float64 `json:"mean_turns"`
	MedianTurns   float64 `json:"median_turns"`
	P95Turns      float64 `json:"p95_turns"`
	MaxTurns      int     `json:"max_turns"`
	MeanCardsLeft float64 `json:"mean_cards_left"`
	TotalDraws    int     `json:"total_draws"`
}

// Report summarises stats for the simulator's configuration
func (s *Simulator) Report(stats *statistics.Statistics) Report {
	return Report{
		Seed:          s.config.Seed,
		Games:         stats.Games,
		Player:        s.config.Player,
		Computer:      s.config.Computer,
		PlayerWins:    stats.Wins[game.Player],
		ComputerWins:  stats.Wins[game.Computer],
		Blocked:       stats.Blocked,
		PlayerRate:    stats.WinRate(game.Player),
		ComputerRate:  stats.WinRate(game.Computer),
		MeanTurns:     stats.MeanTurns(),
		MedianTurns:   stats.Median(),
		P95Turns:      stats.Percentile(0.95),
		MaxTurns:      stats.MaxTurns,
		MeanCardsLeft: stats.MeanCardsLeft(),
		TotalDraws:    stats.SumDraws,
	}
}
