package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove indicates a card failed the legality check or the game
	// is not accepting that kind of move right now.
	ErrIllegalMove = errors.New("game: illegal move")

	// ErrDeckEmpty indicates a draw was requested with no cards left to draw.
	ErrDeckEmpty = errors.New("game: deck empty")

	// ErrNoPendingWild indicates a color was chosen with no wild awaiting one.
	ErrNoPendingWild = errors.New("game: no pending wild")

	// ErrNotYourTurn indicates an intent from the actor who is not on turn.
	ErrNotYourTurn = errors.New("game: not your turn")

	// ErrInvalidColor indicates a wild was resolved to something other than
	// red, blue, green or yellow.
	ErrInvalidColor = errors.New("game: invalid color")
)

// Refinements of ErrIllegalMove; errors.Is matches both.
var (
	ErrGameOver      = fmt.Errorf("%w: game is over", ErrIllegalMove)
	ErrCardNotInHand = fmt.Errorf("%w: card not in hand", ErrIllegalMove)
	ErrColorPending  = fmt.Errorf("%w: waiting for a color choice", ErrIllegalMove)
	ErrCannotPass    = fmt.Errorf("%w: cannot pass", ErrIllegalMove)
)
