package dal

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrDuplicateBillingPeriod means an insert would double-invoice a
	// customer for a calendar month. Generation treats it as a no-op.
	ErrDuplicateBillingPeriod = errors.New("customer already invoiced for billing period")
)
