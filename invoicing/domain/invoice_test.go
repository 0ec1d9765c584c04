package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_DerivedStatus(t *testing.T) {
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  Status
		dueDate time.Time
		want    Status
	}{
		{
			name:    "sent invoice past due is overdue",
			status:  StatusSent,
			dueDate: today.AddDate(0, 0, -1),
			want:    StatusOverdue,
		},
		{
			name:    "pending invoice past due is overdue",
			status:  StatusPending,
			dueDate: today.AddDate(0, 0, -1),
			want:    StatusOverdue,
		},
		{
			name:    "invoice due today is not overdue",
			status:  StatusSent,
			dueDate: today,
			want:    StatusSent,
		},
		{
			name:    "due date compares by calendar day, not clock time",
			status:  StatusSent,
			dueDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			want:    StatusSent,
		},
		{
			name:    "paid invoice is never overdue",
			status:  StatusPaid,
			dueDate: today.AddDate(0, 0, -30),
			want:    StatusPaid,
		},
		{
			name:    "cancelled invoice is never overdue",
			status:  StatusCancelled,
			dueDate: today.AddDate(0, 0, -30),
			want:    StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Invoice{Status: tt.status, DueDate: tt.dueDate}

			assert.Equal(t, tt.want, i.DerivedStatus(today))
		})
	}
}

func TestBilledPeriods(t *testing.T) {
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	invoices := []*Invoice{
		{CustomerID: "acme", PeriodStart: march},
		{CustomerID: "acme", PeriodStart: march.AddDate(0, 1, 0)},
		{CustomerID: "other", PeriodStart: march.AddDate(0, 0, 14)},
	}

	billed := BilledPeriods(invoices)

	assert.Len(t, billed, 3)
	assert.Contains(t, billed, NewPeriodKey("acme", march))
	// any day within the month maps to the same key
	assert.Contains(t, billed, NewPeriodKey("other", march))
	assert.NotContains(t, billed, NewPeriodKey("other", march.AddDate(0, 1, 0)))
}

func TestInvoice_IsSendable(t *testing.T) {
	assert.True(t, (&Invoice{Status: StatusPending}).IsSendable())
	assert.False(t, (&Invoice{Status: StatusSent}).IsSendable())
	assert.False(t, (&Invoice{Status: StatusPaid}).IsSendable())
	assert.False(t, (&Invoice{Status: StatusCancelled}).IsSendable())
}
