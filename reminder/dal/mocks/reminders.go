package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/reminder/domain"
)

type Reminders struct {
	mock.Mock
}

func (m *Reminders) GetOpenReminders(ctx context.Context) ([]*domain.Reminder, error) {
	args := m.Called(ctx)

	var reminders []*domain.Reminder
	if args.Get(0) != nil {
		reminders = args.Get(0).([]*domain.Reminder)
	}

	return reminders, args.Error(1)
}
