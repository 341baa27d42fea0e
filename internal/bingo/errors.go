package bingo

import "errors"

var (
	// ErrExhaustedPool is returned when a draw is attempted with no numbers
	// left and nobody has won yet.
	ErrExhaustedPool = errors.New("draw pool exhausted")

	// ErrUnregisteredParticipant is returned by Unregister for a listener
	// that is not currently registered. Callers may treat it as a warning.
	ErrUnregisteredParticipant = errors.New("participant is not registered")

	// ErrUninitializedParticipant is returned when a player is cloned
	// before Configure has given it a name and a ticket.
	ErrUninitializedParticipant = errors.New("participant is not configured")

	// ErrNoParticipants is returned when a game is started or populated
	// without any players.
	ErrNoParticipants = errors.New("no participants registered")

	ErrInvalidRange      = errors.New("invalid number range")
	ErrInvalidTicketSize = errors.New("invalid ticket size")
	ErrInvalidDraw       = errors.New("invalid draw")
)
