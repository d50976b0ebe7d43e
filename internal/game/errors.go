// internal/game/errors.go
package game

import "errors"

// Recoverable action failures, surfaced verbatim to the acting client. The
// engine never leaves state partially mutated when one of these is returned.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrCardNotInHand      = errors.New("card not in hand")
	ErrIllegalPlay        = errors.New("cannot play this card")
	ErrInvalidColorChoice = errors.New("must choose a color for wild card")
)

// Structural misuse by the caller rather than player-facing failures.
var (
	ErrGameFinished   = errors.New("game already finished")
	ErrNoDrawnCard    = errors.New("no drawn card pending")
	ErrNotEnoughSeats = errors.New("a game needs at least 2 players")
)
