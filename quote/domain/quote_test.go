package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote_DerivedStatus(t *testing.T) {
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     Status
		validUntil time.Time
		want       Status
	}{
		{
			name:       "sent quote past validity is expired",
			status:     StatusSent,
			validUntil: today.AddDate(0, 0, -1),
			want:       StatusExpired,
		},
		{
			name:       "draft quote past validity is expired",
			status:     StatusDraft,
			validUntil: today.AddDate(0, 0, -1),
			want:       StatusExpired,
		},
		{
			name:       "quote valid through today is not expired",
			status:     StatusSent,
			validUntil: today,
			want:       StatusSent,
		},
		{
			name:       "accepted quote never expires",
			status:     StatusAccepted,
			validUntil: today.AddDate(0, 0, -30),
			want:       StatusAccepted,
		},
		{
			name:       "declined quote never expires",
			status:     StatusDeclined,
			validUntil: today.AddDate(0, 0, -30),
			want:       StatusDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Quote{Status: tt.status, ValidUntil: tt.validUntil}

			assert.Equal(t, tt.want, q.DerivedStatus(today))
		})
	}
}

func TestQuote_IsEditable(t *testing.T) {
	assert.True(t, (&Quote{Status: StatusDraft}).IsEditable())
	assert.True(t, (&Quote{Status: StatusSent}).IsEditable())
	assert.False(t, (&Quote{Status: StatusAccepted}).IsEditable())
	assert.False(t, (&Quote{Status: StatusDeclined}).IsEditable())
}

func TestQuote_DocumentName(t *testing.T) {
	q := &Quote{Number: 42}

	assert.Equal(t, "quote-0042.pdf", q.DocumentName())
}
