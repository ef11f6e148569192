package game

import (
	"slices"

	"github.com/lox/uno-cli/uno"
)

// Snapshot is a read-only copy of the session from the human player's
// seat. The computer's cards are only counted.
type Snapshot struct {
	PlayerHand       []uno.Card   `json:"player_hand"`
	PlayableIDs      []uno.CardID `json:"playable_ids"`
	ComputerHandSize int          `json:"computer_hand_size"`
	DeckSize         int          `json:"deck_size"`
	DiscardTop       uno.Card     `json:"discard_top"`
	DiscardSize      int          `json:"discard_size"`
	ActiveColor      uno.Color    `json:"active_color"`
	Direction        Direction    `json:"direction"`
	CurrentPlayer    Actor        `json:"current_player"`
	Phase            Phase        `json:"phase"`
	Pending          *PendingWild `json:"pending,omitempty"`
	Winner           *Actor       `json:"winner,omitempty"`
	Message          string       `json:"message"`
}

// Snapshot copies out everything a renderer needs. PlayableIDs is only
// filled while the player is expected to move.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerHand:       slices.Clone(s.hands[Player]),
		ComputerHandSize: len(s.hands[Computer]),
		DeckSize:         len(s.deck),
		DiscardTop:       s.Top(),
		DiscardSize:      len(s.discard),
		ActiveColor:      s.activeColor,
		Direction:        s.direction,
		CurrentPlayer:    s.current,
		Phase:            s.Phase(),
		Message:          s.message,
	}
	if snap.Phase == AwaitingPlayerMove {
		for _, card := range s.LegalCards(Player) {
			snap.PlayableIDs = append(snap.PlayableIDs, card.ID)
		}
	}
	if s.pending != nil {
		pending := *s.pending
		snap.Pending = &pending
	}
	if s.hasWinner {
		winner := s.winner
		snap.Winner = &winner
	}
	return snap
}
