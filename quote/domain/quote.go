package domain

import (
	"fmt"
	"time"

	"github.com/nordbill/backoffice/times"
)

// Status is a stored quote lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"

	// StatusExpired is a derived read-time view, never persisted.
	StatusExpired Status = "expired"
)

// Action is a named lifecycle transition.
type Action string

const (
	ActionMarkSent Action = "markSent"
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
)

// Quote is a priced offer with line items. Totals are cached on the quote and
// recomputed from the full item set on every item replace; all arithmetic
// happens in the money package before assignment.
type Quote struct {
	ID          string     `firestore:"-" json:"id"`
	Number      int64      `firestore:"number" json:"number"`
	CustomerID  string     `firestore:"customerId" json:"customerId"`
	Title       string     `firestore:"title" json:"title"`
	ValidFrom   time.Time  `firestore:"validFrom" json:"validFrom"`
	ValidUntil  time.Time  `firestore:"validUntil" json:"validUntil"`
	VATRate     float64    `firestore:"vatRate" json:"vatRate"`
	Subtotal    float64    `firestore:"subtotal" json:"subtotal"`
	VATAmount   float64    `firestore:"vatAmount" json:"vatAmount"`
	Total       float64    `firestore:"total" json:"total"`
	Status      Status     `firestore:"status" json:"status"`
	SentAt      *time.Time `firestore:"sentAt" json:"sentAt"`
	SentToEmail string     `firestore:"sentToEmail" json:"sentToEmail"`
	AcceptedAt  *time.Time `firestore:"acceptedAt" json:"acceptedAt"`
	DeclinedAt  *time.Time `firestore:"declinedAt" json:"declinedAt"`
	Notes       string     `firestore:"notes" json:"notes"`
	Terms       string     `firestore:"terms" json:"terms"`
}

// QuoteItem is one priced line on a quote. Total is quantity times unit
// price, cached at write time.
type QuoteItem struct {
	ID          string  `firestore:"-" json:"id"`
	Description string  `firestore:"description" json:"description"`
	Details     string  `firestore:"details" json:"details"`
	Quantity    float64 `firestore:"quantity" json:"quantity"`
	Unit        string  `firestore:"unit" json:"unit"`
	UnitPrice   float64 `firestore:"unitPrice" json:"unitPrice"`
	Total       float64 `firestore:"total" json:"total"`
	SortOrder   int     `firestore:"sortOrder" json:"sortOrder"`
}

// DerivedStatus is the canonical read-time projection of a quote status.
// A quote is expired when its validity end is strictly before today's UTC
// calendar day while not yet accepted or declined.
func (q *Quote) DerivedStatus(today time.Time) Status {
	if q.Status == StatusDraft || q.Status == StatusSent {
		if times.DayUTC(q.ValidUntil).Before(times.DayUTC(today)) {
			return StatusExpired
		}
	}

	return q.Status
}

// IsEditable reports whether the quote's items may still be replaced.
// Accepted and declined quotes are frozen.
func (q *Quote) IsEditable() bool {
	return q.Status != StatusAccepted && q.Status != StatusDeclined
}

// IsSendable reports whether the quote may be dispatched.
func (q *Quote) IsSendable() bool {
	return q.Status == StatusDraft
}

// DocumentName is the deterministic artifact name for the rendered quote.
func (q *Quote) DocumentName() string {
	return fmt.Sprintf("quote-%04d.pdf", q.Number)
}

// FormattedNumber is the quote number as printed on documents.
func (q *Quote) FormattedNumber() string {
	return fmt.Sprintf("%04d", q.Number)
}
