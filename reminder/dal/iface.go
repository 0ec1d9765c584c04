package dal

import (
	"context"

	"github.com/nordbill/backoffice/reminder/domain"
)

//go:generate mockery --name Reminders --output ./mocks
type Reminders interface {
	// GetOpenReminders lists the not-completed reminders.
	GetOpenReminders(ctx context.Context) ([]*domain.Reminder, error)
}
