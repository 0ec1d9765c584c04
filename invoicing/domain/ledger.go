package domain

import (
	"fmt"
	"time"
)

// PeriodKey identifies one (customer, billing month) pair.
type PeriodKey string

// NewPeriodKey builds the key for a customer and the calendar month the
// period start falls in.
func NewPeriodKey(customerID string, month time.Time) PeriodKey {
	month = month.UTC()
	return PeriodKey(fmt.Sprintf("%s/%04d-%02d", customerID, month.Year(), month.Month()))
}

// BilledPeriods builds the set of (customer, month) keys already covered by
// an invoice. It is recomputed from the live invoice set on every generation
// run; it is never cached as a flag, so repeated runs for the same month are
// idempotent.
func BilledPeriods(invoices []*Invoice) map[PeriodKey]struct{} {
	billed := make(map[PeriodKey]struct{}, len(invoices))

	for _, invoice := range invoices {
		billed[NewPeriodKey(invoice.CustomerID, invoice.PeriodStart)] = struct{}{}
	}

	return billed
}
