package domain

import (
	"fmt"
	"time"

	"github.com/nordbill/backoffice/times"
)

// Status is a stored invoice lifecycle state. Transitions are forward-only
// except explicit cancellation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"

	// StatusOverdue is a derived read-time view, never persisted.
	StatusOverdue Status = "overdue"
)

// Action is a named lifecycle transition.
type Action string

const (
	ActionMarkSent Action = "markSent"
	ActionMarkPaid Action = "markPaid"
	ActionCancel   Action = "cancel"
)

// Invoice is a recurring invoice covering one calendar-month billing period.
// Amounts are stored rounded per the billing rounding policy; all arithmetic
// happens in the money package before assignment.
type Invoice struct {
	ID          string     `firestore:"-" json:"id"`
	Number      int64      `firestore:"number" json:"number"`
	CustomerID  string     `firestore:"customerId" json:"customerId"`
	InvoiceDate time.Time  `firestore:"invoiceDate" json:"invoiceDate"`
	DueDate     time.Time  `firestore:"dueDate" json:"dueDate"`
	PeriodStart time.Time  `firestore:"periodStart" json:"periodStart"`
	PeriodEnd   time.Time  `firestore:"periodEnd" json:"periodEnd"`
	Amount      float64    `firestore:"amount" json:"amount"`
	VATRate     float64    `firestore:"vatRate" json:"vatRate"`
	VATAmount   float64    `firestore:"vatAmount" json:"vatAmount"`
	Total       float64    `firestore:"total" json:"total"`
	Status      Status     `firestore:"status" json:"status"`
	SentAt      *time.Time `firestore:"sentAt" json:"sentAt"`
	SentTo      string     `firestore:"sentTo" json:"sentTo"`
	PaidAt      *time.Time `firestore:"paidAt" json:"paidAt"`
	CancelledAt *time.Time `firestore:"cancelledAt" json:"cancelledAt"`
	Description string     `firestore:"description" json:"description"`
}

// DerivedStatus is the canonical read-time projection of an invoice status.
// An invoice is overdue when its due date is strictly before today's UTC
// calendar day while still pending or sent. Overdue is never stored, so it
// cannot drift from the due date.
func (i *Invoice) DerivedStatus(today time.Time) Status {
	if i.Status == StatusPending || i.Status == StatusSent {
		if times.DayUTC(i.DueDate).Before(times.DayUTC(today)) {
			return StatusOverdue
		}
	}

	return i.Status
}

// IsSendable reports whether the invoice may be dispatched.
func (i *Invoice) IsSendable() bool {
	return i.Status == StatusPending
}

// DocumentName is the deterministic artifact name for the rendered invoice.
func (i *Invoice) DocumentName() string {
	return fmt.Sprintf("invoice-%04d.pdf", i.Number)
}

// FormattedNumber is the invoice number as printed on documents.
func (i *Invoice) FormattedNumber() string {
	return fmt.Sprintf("%04d", i.Number)
}
