package game

import "errors"

var (
	// ErrNotPlaying is returned for game actions requested outside an
	// active game (before the first deal or after a terminal state).
	ErrNotPlaying = errors.New("no game in progress")

	// ErrIllegalMove is returned when a requested placement violates the
	// tableau/foundation rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingContainer indicates a move referenced a container id that
	// does not exist. Signals a desync between the caller and the engine.
	ErrMissingContainer = errors.New("container not found")

	// ErrCardNotFound indicates the referenced card was not where the move
	// said it should be. Signals a desync; never surfaced to the player.
	ErrCardNotFound = errors.New("card not found in container")

	// ErrAlreadyCommitted is returned when a pending move is committed twice.
	ErrAlreadyCommitted = errors.New("move already committed")

	// ErrDeckNotDepleted is returned when a refresh is requested while the
	// deck still holds cards. Refilling then would discard the remaining
	// draw pile and break the 104-card invariant.
	ErrDeckNotDepleted = errors.New("deck still has cards to draw")
)
