package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nordbill/backoffice/dispatch"
	"github.com/nordbill/backoffice/document"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/framework/web"
	invoiceDal "github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/logger"
	quoteDal "github.com/nordbill/backoffice/quote/dal"
)

type Dispatch struct {
	loggerProvider logger.Provider
	service        *dispatch.Service
}

func NewDispatch(loggerProvider logger.Provider, conn *connection.Connection) *Dispatch {
	return &Dispatch{
		loggerProvider,
		dispatch.NewService(loggerProvider, conn),
	}
}

// DispatchInvoice emails the invoice PDF to the customer and marks it sent.
func (h *Dispatch) DispatchInvoice(ctx *gin.Context) error {
	invoiceID := ctx.Param("invoiceID")
	if invoiceID == "" {
		return web.NewRequestError(errors.New("missing invoiceID parameter"), http.StatusBadRequest)
	}

	invoice, err := h.service.DispatchInvoice(ctx, invoiceID)
	if err != nil {
		return translateDispatchError(err, invoiceDal.ErrInvoiceNotFound)
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}

// DispatchQuote emails the quote PDF to the customer and marks it sent.
func (h *Dispatch) DispatchQuote(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	quote, err := h.service.DispatchQuote(ctx, quoteID)
	if err != nil {
		return translateDispatchError(err, quoteDal.ErrQuoteNotFound)
	}

	return web.Respond(ctx, quote, http.StatusOK)
}

// GetInvoiceDocument downloads the invoice PDF without sending it.
func (h *Dispatch) GetInvoiceDocument(ctx *gin.Context) error {
	invoiceID := ctx.Param("invoiceID")
	if invoiceID == "" {
		return web.NewRequestError(errors.New("missing invoiceID parameter"), http.StatusBadRequest)
	}

	pdf, filename, err := h.service.RenderInvoiceDocument(ctx, invoiceID)
	if err != nil {
		return translateDispatchError(err, invoiceDal.ErrInvoiceNotFound)
	}

	return web.RespondDownloadFile(ctx, pdf, filename, document.ContentType)
}

// GetQuoteDocument downloads the quote PDF without sending it.
func (h *Dispatch) GetQuoteDocument(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	pdf, filename, err := h.service.RenderQuoteDocument(ctx, quoteID)
	if err != nil {
		return translateDispatchError(err, quoteDal.ErrQuoteNotFound)
	}

	return web.RespondDownloadFile(ctx, pdf, filename, document.ContentType)
}

// translateDispatchError maps the dispatch stage taxonomy onto HTTP statuses.
// A transport failure maps to 502 and may be retried; a post-send transition
// failure maps to 500 so the caller verifies before resending.
func translateDispatchError(err, notFound error) error {
	var (
		transportErr *dispatch.TransportError
		postSendErr  *dispatch.PostSendTransitionError
		renderErr    *dispatch.RenderError
	)

	switch {
	case errors.Is(err, notFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, dispatch.ErrNotSendable):
		return web.NewRequestError(err, http.StatusConflict)
	case errors.Is(err, dispatch.ErrMissingRecipientEmail):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.As(err, &transportErr):
		return web.NewRequestError(err, http.StatusBadGateway)
	case errors.As(err, &postSendErr), errors.As(err, &renderErr):
		return web.NewRequestError(err, http.StatusInternalServerError)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
