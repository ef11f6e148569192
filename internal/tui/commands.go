package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
)

type commandKind int

const (
	cmdPlay commandKind = iota
	cmdDraw
	cmdColor
	cmdPass
	cmdNew
	cmdHelp
	cmdQuit
)

// command is a parsed line of user input
type command struct {
	kind   commandKind
	index  int // 1-based hand position, 0 when cardID is set
	cardID uno.CardID
	color  uno.Color
}

const helpText = "Commands: play <n|card-id> (or just <n>), draw, color <red|blue|green|yellow>, pass, new, quit"

// parseCommand turns user input into a command. While a color choice is
// pending a bare color name is accepted.
func parseCommand(input string, phase game.Phase) (command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return command{}, fmt.Errorf("type a command, or 'help'")
	}

	verb, args := parts[0], parts[1:]
	switch verb {
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "h", "help", "?":
		return command{kind: cmdHelp}, nil
	case "n", "new", "restart":
		return command{kind: cmdNew}, nil
	case "d", "draw":
		return command{kind: cmdDraw}, nil
	case "pass":
		return command{kind: cmdPass}, nil
	case "c", "color", "colour":
		if len(args) != 1 {
			return command{}, fmt.Errorf("usage: color <red|blue|green|yellow>")
		}
		return parseColor(args[0])
	case "p", "play":
		if len(args) != 1 {
			return command{}, fmt.Errorf("usage: play <n|card-id>")
		}
		return parseCard(args[0])
	}

	if len(args) == 0 {
		if _, err := strconv.Atoi(verb); err == nil {
			return parseCard(verb)
		}
		if phase == game.AwaitingColorChoice {
			if cmd, err := parseColor(verb); err == nil {
				return cmd, nil
			}
		}
		if strings.Contains(verb, "-") {
			return parseCard(verb)
		}
	}
	return command{}, fmt.Errorf("unknown command %q, type 'help'", input)
}

func parseColor(arg string) (command, error) {
	color, err := uno.ParseColor(arg)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdColor, color: color}, nil
}

func parseCard(arg string) (command, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 {
			return command{}, fmt.Errorf("card numbers start at 1")
		}
		return command{kind: cmdPlay, index: n}, nil
	}
	return command{kind: cmdPlay, cardID: uno.CardID(arg)}, nil
}

// resolveCard maps a play command onto a card in hand
func resolveCard(cmd command, hand []uno.Card) (uno.CardID, error) {
	if cmd.cardID != "" {
		return cmd.cardID, nil
	}
	if cmd.index > len(hand) {
		return "", fmt.Errorf("you only hold %d cards", len(hand))
	}
	return hand[cmd.index-1].ID, nil
}
