// Package reminder buckets open reminders into overdue, today and upcoming
// for dashboard and notification surfaces.
package reminder

import (
	"sort"
	"time"

	"github.com/nordbill/backoffice/reminder/domain"
	"github.com/nordbill/backoffice/times"
)

// Escalation is the classified view over not-completed reminders.
type Escalation struct {
	Overdue  []*domain.Reminder `json:"overdue"`
	Today    []*domain.Reminder `json:"today"`
	Upcoming []*domain.Reminder `json:"upcoming"`
}

// Classify buckets the not-completed reminders against the given day.
// The comparison is by UTC calendar day, strictly: a reminder dated before
// today is overdue, dated today is today, anything later is upcoming.
// today is injected by the caller, never read from a clock here.
func Classify(reminders []*domain.Reminder, today time.Time) Escalation {
	day := times.DayUTC(today)

	var escalation Escalation

	for _, reminder := range reminders {
		if reminder.Completed {
			continue
		}

		reminderDay := times.DayUTC(reminder.Date)

		switch {
		case reminderDay.Before(day):
			escalation.Overdue = append(escalation.Overdue, reminder)
		case reminderDay.Equal(day):
			escalation.Today = append(escalation.Today, reminder)
		default:
			escalation.Upcoming = append(escalation.Upcoming, reminder)
		}
	}

	sortBucket(escalation.Overdue)
	sortBucket(escalation.Today)
	sortBucket(escalation.Upcoming)

	return escalation
}

// Ordered flattens the escalation with overdue first, then today, then the
// rest. Each bucket keeps its date order.
func (e Escalation) Ordered() []*domain.Reminder {
	ordered := make([]*domain.Reminder, 0, len(e.Overdue)+len(e.Today)+len(e.Upcoming))
	ordered = append(ordered, e.Overdue...)
	ordered = append(ordered, e.Today...)
	ordered = append(ordered, e.Upcoming...)

	return ordered
}

func sortBucket(reminders []*domain.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		if !reminders[i].Date.Equal(reminders[j].Date) {
			return reminders[i].Date.Before(reminders[j].Date)
		}

		return reminders[i].Time < reminders[j].Time
	})
}
