package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordbill/backoffice/quote/domain"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.Status
		action  domain.Action
		want    domain.Status
		wantErr bool
	}{
		{
			name:    "draft quote can be marked sent",
			current: domain.StatusDraft,
			action:  domain.ActionMarkSent,
			want:    domain.StatusSent,
		},
		{
			name:    "sent quote can be accepted",
			current: domain.StatusSent,
			action:  domain.ActionAccept,
			want:    domain.StatusAccepted,
		},
		{
			name:    "sent quote can be declined",
			current: domain.StatusSent,
			action:  domain.ActionDecline,
			want:    domain.StatusDeclined,
		},
		{
			name:    "draft quote cannot be accepted before sending",
			current: domain.StatusDraft,
			action:  domain.ActionAccept,
			wantErr: true,
		},
		{
			name:    "accepted quote cannot be declined",
			current: domain.StatusAccepted,
			action:  domain.ActionDecline,
			wantErr: true,
		},
		{
			name:    "declined quote cannot be resent",
			current: domain.StatusDeclined,
			action:  domain.ActionMarkSent,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextStatus(tt.current, tt.action)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIllegalTransition)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
