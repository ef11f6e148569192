package game

import (
	"fmt"

	"github.com/lox/uno-cli/uno"
)

// EffectKind classifies what an accepted intent did
type EffectKind int

const (
	EffectPlain EffectKind = iota
	EffectSkip
	EffectReverse
	EffectDrawTwo
	EffectWildPending
	EffectWild
	EffectWildDrawFour
	EffectDraw
	EffectPass
)

var effectNames = map[EffectKind]string{
	EffectPlain:        "plain",
	EffectSkip:         "skip",
	EffectReverse:      "reverse",
	EffectDrawTwo:      "draw2",
	EffectWildPending:  "wild_pending",
	EffectWild:         "wild",
	EffectWildDrawFour: "wild4",
	EffectDraw:         "draw",
	EffectPass:         "pass",
}

// String returns the effect kind name
func (k EffectKind) String() string {
	if name, ok := effectNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k EffectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses an effect kind name
func (k *EffectKind) UnmarshalText(text []byte) error {
	for kind, name := range effectNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid effect kind %q", text)
}

// Effect describes the outcome of a play, color choice, draw or pass
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Actor  Actor      `json:"actor"`
	Card   uno.Card   `json:"card"`
	Target Actor      `json:"target"`
	// Color is the active color after the effect
	Color uno.Color `json:"color"`
	// Drawn is how many cards Target (or Actor, for EffectDraw) picked up.
	// It can be lower than the card asks for when the deck runs out.
	Drawn int `json:"drawn,omitempty"`
	// Skipped is set when Target forfeits their next turn
	Skipped bool `json:"skipped,omitempty"`
}

// statusAfter builds the status line shown once effect has been applied
func (s *Session) statusAfter(e Effect) string {
	if s.over {
		if !s.hasWinner {
			return "No moves left. Game blocked."
		}
		if s.winner == Player {
			return "You won! UNO!"
		}
		return "Computer won!"
	}

	switch e.Kind {
	case EffectSkip:
		if e.Actor == Player {
			return "Computer skipped!"
		}
		return "You are skipped!"
	case EffectReverse:
		return "Direction reversed!"
	case EffectDrawTwo:
		return drawMessage(e)
	case EffectWildPending:
		if e.Actor == Player {
			return "Choose a color!"
		}
		return "Computer is choosing a color..."
	case EffectWild:
		return fmt.Sprintf("%s played Wild, color is now %s!", e.Actor.Name(), e.Color)
	case EffectWildDrawFour:
		return fmt.Sprintf("Wild +4, color is now %s. %s", e.Color, drawMessage(e))
	case EffectDraw:
		if e.Actor == Player {
			return "Card drawn! Computer's turn..."
		}
		return "Computer drew a card. Your turn!"
	case EffectPass:
		if e.Actor == Player {
			return "You pass. Computer's turn..."
		}
		return "Computer passes. Your turn!"
	}

	if s.current == Computer {
		return "Computer's turn..."
	}
	return "Your turn!"
}

func drawMessage(e Effect) string {
	if e.Target == Computer {
		return fmt.Sprintf("Computer draws %d!", e.Drawn)
	}
	return fmt.Sprintf("You draw %d!", e.Drawn)
}
