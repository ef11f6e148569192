// Package game implements the UNO rules engine and turn state machine for a
// human playing against a computer opponent.
//
// The main type is Session, which holds the deck, both hands, the discard
// pile, the active color, the direction of play and whose turn it is.
//
// # Basic Usage
//
// Every operation takes the session as input and returns a new session; the
// receiver is never modified, so a rejected intent leaves the caller's state
// exactly as it was:
//
//	rng := randutil.New(42)
//	s := game.NewSession(rng)
//	s, effect, err := s.PlayCard("red-5-1", game.Player)
//	if errors.Is(err, game.ErrIllegalMove) {
//	    // s is unchanged
//	}
//	if s.Phase() == game.AwaitingColorChoice {
//	    s, effect, err = s.ChooseColor(uno.Green)
//	}
//
// # Computer Turns
//
// The computer is driven by an Agent. PlayTurn asks the agent for a move,
// applies it, and resolves a wild color choice in one step:
//
//	s, effects, err := s.PlayTurn(game.Computer, agent)
//
// # Deterministic Testing
//
// Use WithDeck to supply a pre-arranged 108 card deck. The first cards go to
// the player, the next to the computer, and the first non-wild after that is
// flipped onto the discard pile.
//
// # Architecture
//
//   - rules.go: applying a play, resolving a wild, forced draws
//   - turn.go: phases, seat order, direction, win and blocked detection
//   - agent.go: the Agent interface and PlayTurn
//   - snapshot.go: read-only views for renderers
package game
