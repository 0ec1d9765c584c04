package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/framework/web"
	"github.com/nordbill/backoffice/invoicing"
	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/times"
)

type Invoicing struct {
	loggerProvider logger.Provider
	service        invoicing.IInvoicingService
}

func NewInvoicing(loggerProvider logger.Provider, conn *connection.Connection) *Invoicing {
	return &Invoicing{
		loggerProvider,
		invoicing.NewInvoicingService(loggerProvider, conn),
	}
}

type generateRequest struct {
	InvoiceMonth string `json:"invoiceMonth"`
}

type transitionRequest struct {
	Action domain.Action `json:"action" binding:"required"`
}

// GenerateInvoices creates the missing recurring invoices for a billing
// month. Rerunning it for the same month only fills gaps.
func (h *Invoicing) GenerateInvoices(ctx *gin.Context) error {
	var req generateRequest

	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
	}

	created, err := h.service.GenerateInvoicesForPeriod(ctx, req.InvoiceMonth)
	if err != nil {
		if errors.Is(err, web.ErrBadRequest) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, created, http.StatusOK)
}

func (h *Invoicing) ListInvoices(ctx *gin.Context) error {
	invoices, err := h.service.ListInvoices(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	today := times.CurrentDayUTC()
	for _, invoice := range invoices {
		invoice.Status = invoice.DerivedStatus(today)
	}

	return web.Respond(ctx, invoices, http.StatusOK)
}

func (h *Invoicing) GetInvoice(ctx *gin.Context) error {
	invoiceID := ctx.Param("invoiceID")
	if invoiceID == "" {
		return web.NewRequestError(errors.New("missing invoiceID parameter"), http.StatusBadRequest)
	}

	invoice, err := h.service.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, dal.ErrInvoiceNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	invoice.Status = invoice.DerivedStatus(times.CurrentDayUTC())

	return web.Respond(ctx, invoice, http.StatusOK)
}

// TransitionInvoice applies one lifecycle action (markSent, markPaid,
// cancel) to an invoice.
func (h *Invoicing) TransitionInvoice(ctx *gin.Context) error {
	invoiceID := ctx.Param("invoiceID")
	if invoiceID == "" {
		return web.NewRequestError(errors.New("missing invoiceID parameter"), http.StatusBadRequest)
	}

	var req transitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	invoice, err := h.service.Transition(ctx, invoiceID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrInvoiceNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, invoicing.ErrIllegalTransition):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}
