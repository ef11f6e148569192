package uno

import (
	"fmt"
	"strings"
)

// Color represents a card color. Wild is only ever a card color, never an
// active color.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Yellow
	Wild
)

// Colors lists the four named colors a wild can resolve to.
var Colors = []Color{Red, Blue, Green, Yellow}

// String returns the lowercase color name
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Wild:
		return "wild"
	default:
		return "?"
	}
}

// IsNamed reports whether c is one of the four playable colors
func (c Color) IsNamed() bool {
	return c <= Yellow
}

// ParseColor parses a color name. Single letter abbreviations (r, b, g, y)
// are accepted. Wild is rejected since it cannot be chosen.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	case "yellow", "y":
		return Yellow, nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}

// Value is the face value of a card: a number 0-9 or an action
type Value uint8

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	WildCard
	WildDrawFour
)

// String returns the value as used in card IDs
func (v Value) String() string {
	switch {
	case v <= Nine:
		return fmt.Sprintf("%d", v)
	case v == Skip:
		return "skip"
	case v == Reverse:
		return "reverse"
	case v == DrawTwo:
		return "draw2"
	case v == WildCard:
		return "wild"
	case v == WildDrawFour:
		return "wild4"
	default:
		return "?"
	}
}

// IsNumber reports whether v is 0-9
func (v Value) IsNumber() bool {
	return v <= Nine
}

// CardID uniquely identifies a physical card within a deck
type CardID string

// Card is an immutable playing card
type Card struct {
	ID    CardID `json:"id"`
	Color Color  `json:"color"`
	Value Value  `json:"value"`
}

// NewCard creates a colored card. copyNum distinguishes the two copies of
// each non-zero value.
func NewCard(color Color, value Value, copyNum int) Card {
	return Card{
		ID:    CardID(fmt.Sprintf("%s-%s-%d", color, value, copyNum)),
		Color: color,
		Value: value,
	}
}

// NewWildCard creates the n-th wild or wild draw four card
func NewWildCard(value Value, n int) Card {
	return Card{
		ID:    CardID(fmt.Sprintf("%s-%d", value, n)),
		Color: Wild,
		Value: value,
	}
}

// IsWild reports whether the card is a wild or wild draw four
func (c Card) IsWild() bool {
	return c.Color == Wild
}

// IsAction reports whether the card is one the computer prefers to play
// when it can: skip, reverse, draw two or wild draw four. A plain wild is
// not counted.
func (c Card) IsAction() bool {
	switch c.Value {
	case Skip, Reverse, DrawTwo, WildDrawFour:
		return true
	}
	return false
}

// String returns a short human readable form, e.g. "red 5" or "wild4"
func (c Card) String() string {
	if c.IsWild() {
		return c.Value.String()
	}
	return c.Color.String() + " " + c.Value.String()
}

// MarshalText encodes the color by name so JSON payloads stay readable
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any color name including wild
func (c *Color) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "wild") {
		*c = Wild
		return nil
	}
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText encodes the value by name
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a value name as produced by String
func (v *Value) UnmarshalText(text []byte) error {
	for candidate := Zero; candidate <= WildDrawFour; candidate++ {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid card value %q", text)
}
