package reminder

import (
	"context"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/reminder/dal"
	"github.com/nordbill/backoffice/times"
)

type ReminderService struct {
	loggerProvider logger.Provider
	remindersDAL   dal.Reminders
}

func NewReminderService(log logger.Provider, conn *connection.Connection) *ReminderService {
	return &ReminderService{
		log,
		dal.NewRemindersFirestoreWithClient(conn.Firestore),
	}
}

// Escalation classifies the open reminders against today's UTC calendar day.
func (s *ReminderService) Escalation(ctx context.Context) (Escalation, error) {
	reminders, err := s.remindersDAL.GetOpenReminders(ctx)
	if err != nil {
		return Escalation{}, err
	}

	escalation := Classify(reminders, times.CurrentDayUTC())

	s.loggerProvider(ctx).Infof("reminder escalation: %d overdue, %d today, %d upcoming",
		len(escalation.Overdue), len(escalation.Today), len(escalation.Upcoming))

	return escalation, nil
}
