package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nordbill/backoffice/reminder/domain"
)

func TestClassify(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	yesterday := &domain.Reminder{ID: "r-1", Date: today.AddDate(0, 0, -1), Type: "call"}
	dueToday := &domain.Reminder{ID: "r-2", Date: today, Type: "email"}
	tomorrow := &domain.Reminder{ID: "r-3", Date: today.AddDate(0, 0, 1), Type: "visit"}

	t.Run("yesterday today and tomorrow land in their buckets", func(t *testing.T) {
		escalation := Classify([]*domain.Reminder{tomorrow, yesterday, dueToday}, today)

		assert.Equal(t, []*domain.Reminder{yesterday}, escalation.Overdue)
		assert.Equal(t, []*domain.Reminder{dueToday}, escalation.Today)
		assert.Equal(t, []*domain.Reminder{tomorrow}, escalation.Upcoming)
	})

	t.Run("completed reminders are skipped", func(t *testing.T) {
		done := &domain.Reminder{ID: "r-4", Date: today.AddDate(0, 0, -5), Completed: true}

		escalation := Classify([]*domain.Reminder{done, yesterday}, today)

		assert.Equal(t, []*domain.Reminder{yesterday}, escalation.Overdue)
	})

	t.Run("same calendar day counts as today regardless of clock time", func(t *testing.T) {
		lateTonight := &domain.Reminder{ID: "r-5", Date: time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)}

		escalation := Classify([]*domain.Reminder{lateTonight}, today)

		assert.Len(t, escalation.Today, 1)
		assert.Empty(t, escalation.Overdue)
		assert.Empty(t, escalation.Upcoming)
	})

	t.Run("buckets keep date order, ties broken by time of day", func(t *testing.T) {
		lastWeek := &domain.Reminder{ID: "r-6", Date: today.AddDate(0, 0, -7), Time: "09:00"}
		yesterdayLate := &domain.Reminder{ID: "r-7", Date: yesterday.Date, Time: "16:00"}
		yesterdayEarly := &domain.Reminder{ID: "r-8", Date: yesterday.Date, Time: "08:00"}

		escalation := Classify([]*domain.Reminder{yesterdayLate, lastWeek, yesterdayEarly}, today)

		assert.Equal(t, []*domain.Reminder{lastWeek, yesterdayEarly, yesterdayLate}, escalation.Overdue)
	})

	t.Run("ordered view places overdue before today before upcoming", func(t *testing.T) {
		escalation := Classify([]*domain.Reminder{tomorrow, dueToday, yesterday}, today)

		assert.Equal(t, []*domain.Reminder{yesterday, dueToday, tomorrow}, escalation.Ordered())
	})

	t.Run("empty input yields empty buckets", func(t *testing.T) {
		escalation := Classify(nil, today)

		assert.Empty(t, escalation.Overdue)
		assert.Empty(t, escalation.Today)
		assert.Empty(t, escalation.Upcoming)
		assert.Empty(t, escalation.Ordered())
	})
}
