package quote

import "errors"

var (
	// ErrIllegalTransition means the quote state machine rejected the
	// requested move.
	ErrIllegalTransition = errors.New("illegal quote status transition")

	// ErrQuoteNotEditable means the quote is accepted or declined and its
	// items are frozen.
	ErrQuoteNotEditable = errors.New("quote is no longer editable")
)
