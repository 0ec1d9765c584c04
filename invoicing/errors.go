package invoicing

import "errors"

var (
	// ErrIllegalTransition is returned when the state machine rejects the
	// requested lifecycle move.
	ErrIllegalTransition = errors.New("illegal invoice status transition")
)
