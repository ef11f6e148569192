package tui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/host"
)

// Bridge forwards host events to the TUI. It is a host.Subscriber; events
// are queued on a channel because the host publishes under its lock.
type Bridge struct {
	events chan host.Event
	logger *log.Logger
}

// NewBridge creates a bridge with room for size queued events
func NewBridge(size int, logger *log.Logger) *Bridge {
	return &Bridge{
		events: make(chan host.Event, size),
		logger: logger.WithPrefix("bridge"),
	}
}

// OnEvent implements host.Subscriber
func (b *Bridge) OnEvent(event host.Event) {
	select {
	case b.events <- event:
	default:
		b.logger.Warn("Event queue full, dropping event", "type", event.Type)
	}
}

// Events returns the queued events
func (b *Bridge) Events() <-chan host.Event {
	return b.events
}

// FormatEvent renders an event as game log lines
func FormatEvent(event host.Event) []string {
	var lines []string
	if event.Type == host.EventStart {
		lines = append(lines,
			"*** NEW GAME ***",
			fmt.Sprintf("Starting card: %s", formatCard(event.Snapshot.DiscardTop)))
	}

	// A wild resolved without a pending step in front of it was either
	// chosen in an earlier event or went out as the last card.
	resolving := event.Type == host.EventColor
	for _, e := range event.Effects {
		lines = append(lines, formatEffect(e, resolving))
		resolving = e.Kind == game.EffectWildPending
	}

	if event.Snapshot.Message != "" {
		lines = append(lines, event.Snapshot.Message)
	}
	return lines
}

func formatEffect(e game.Effect, resolving bool) string {
	who := e.Actor.Name()
	switch e.Kind {
	case game.EffectWild, game.EffectWildDrawFour:
		line := fmt.Sprintf("%s: name%s %s", who, verbSuffix(e.Actor, "s"), e.Color)
		if !resolving {
			line = fmt.Sprintf("%s: play%s %s", who, verbSuffix(e.Actor, "s"), formatCard(e.Card))
		}
		if e.Drawn > 0 {
			line += ", " + drawPhrase(e.Target, e.Drawn)
		}
		return line
	case game.EffectDraw:
		if e.Card.ID != "" {
			return fmt.Sprintf("%s: draw %s", who, formatCard(e.Card))
		}
		return fmt.Sprintf("%s: draws a card", who)
	case game.EffectPass:
		return fmt.Sprintf("%s: pass%s", who, verbSuffix(e.Actor, "es"))
	case game.EffectDrawTwo:
		return fmt.Sprintf("%s: play%s %s, %s", who, verbSuffix(e.Actor, "s"), formatCard(e.Card), drawPhrase(e.Target, e.Drawn))
	default:
		return fmt.Sprintf("%s: play%s %s", who, verbSuffix(e.Actor, "s"), formatCard(e.Card))
	}
}

func drawPhrase(target game.Actor, n int) string {
	return fmt.Sprintf("%s draw%s %d", target.Name(), verbSuffix(target, "s"), n)
}

// verbSuffix conjugates for "You" versus "Computer"
func verbSuffix(actor game.Actor, suffix string) string {
	if actor == game.Player {
		return ""
	}
	return suffix
}
