package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSendable means the entity's status no longer allows dispatch.
	// A re-check happens right before sending to guard against duplicate
	// concurrent sends.
	ErrNotSendable = errors.New("entity is not in a sendable state")

	// ErrMissingRecipientEmail means the customer record has no email
	// address to deliver to.
	ErrMissingRecipientEmail = errors.New("customer has no recipient email")
)

// RenderError means the document engine failed on input that was already
// validated. Nothing was sent; treat it as a defect, not a user error.
type RenderError struct {
	Entity   string
	EntityID string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s %s: %v", e.Entity, e.EntityID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// TransportError means the email transport failed. The entity's status is
// unchanged and the dispatch may be retried by the caller.
type TransportError struct {
	Entity   string
	EntityID string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sending %s %s: %v", e.Entity, e.EntityID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PostSendTransitionError means the email went out but the status write
// failed afterwards. The inconsistency needs manual reconciliation; a blind
// retry would send a duplicate email, so this must never be swallowed or
// mapped to a retryable failure.
type PostSendTransitionError struct {
	Entity   string
	EntityID string
	SentTo   string
	Err      error
}

func (e *PostSendTransitionError) Error() string {
	return fmt.Sprintf("%s %s was emailed to %s but the status update failed: %v", e.Entity, e.EntityID, e.SentTo, e.Err)
}

func (e *PostSendTransitionError) Unwrap() error {
	return e.Err
}
