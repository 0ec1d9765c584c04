package dal

import (
	"context"
	"time"

	"github.com/nordbill/backoffice/invoicing/domain"
)

// StatusUpdate carries the fields written by one lifecycle transition. The
// write is a single atomic document update.
type StatusUpdate struct {
	Status      domain.Status
	SentAt      *time.Time
	SentTo      string
	PaidAt      *time.Time
	CancelledAt *time.Time
}

//go:generate mockery --name Invoices --output ./mocks
type Invoices interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)

	// CreateForPeriod inserts the invoice after re-checking, inside a
	// transaction, that no invoice exists for the same customer and
	// calendar month. A collision returns ErrDuplicateBillingPeriod and
	// writes nothing. The sequential invoice number is allocated from a
	// counter document in the same transaction.
	CreateForPeriod(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// UpdateStatus applies one lifecycle transition and returns the stored
	// invoice, which callers must treat as ground truth.
	UpdateStatus(ctx context.Context, invoiceID string, update StatusUpdate) (*domain.Invoice, error)
}
