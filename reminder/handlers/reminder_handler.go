package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/framework/web"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/reminder"
)

type Reminder struct {
	loggerProvider logger.Provider
	service        *reminder.ReminderService
}

func NewReminder(loggerProvider logger.Provider, conn *connection.Connection) *Reminder {
	return &Reminder{
		loggerProvider,
		reminder.NewReminderService(loggerProvider, conn),
	}
}

// GetEscalation returns the open reminders bucketed into overdue, today and
// upcoming.
func (h *Reminder) GetEscalation(ctx *gin.Context) error {
	escalation, err := h.service.Escalation(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, escalation, http.StatusOK)
}
