package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	dispatchHandlers "github.com/nordbill/backoffice/dispatch/handlers"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/framework/mid"
	"github.com/nordbill/backoffice/framework/web"
	invoicingHandlers "github.com/nordbill/backoffice/invoicing/handlers"
	"github.com/nordbill/backoffice/logger"
	quoteHandlers "github.com/nordbill/backoffice/quote/handlers"
	reminderHandlers "github.com/nordbill/backoffice/reminder/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	invoicing := invoicingHandlers.NewInvoicing(loggerProvider, a.conn)
	quotes := quoteHandlers.NewQuote(loggerProvider, a.conn)
	dispatch := dispatchHandlers.NewDispatch(loggerProvider, a.conn)
	reminders := reminderHandlers.NewReminder(loggerProvider, a.conn)

	app.Get("/health", healthCheck)

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		invoicingGroup := web.NewGroup(app, "/api/v1/invoicing")
		{
			invoicingGroup.Post("/generate", invoicing.GenerateInvoices)
		}

		invoicesGroup := web.NewGroup(app, "/api/v1/invoices")
		{
			invoicesGroup.Get("", invoicing.ListInvoices)
			invoicesGroup.Get("/:invoiceID", invoicing.GetInvoice)
			invoicesGroup.Post("/:invoiceID/transition", invoicing.TransitionInvoice)
			invoicesGroup.Post("/:invoiceID/dispatch", dispatch.DispatchInvoice)
			invoicesGroup.Get("/:invoiceID/document", dispatch.GetInvoiceDocument)
		}

		quotesGroup := web.NewGroup(app, "/api/v1/quotes")
		{
			quotesGroup.Post("", quotes.CreateQuote)
			quotesGroup.Get("", quotes.ListQuotes)
			quotesGroup.Post("/totals", quotes.ComputeTotals)
			quotesGroup.Get("/:quoteID", quotes.GetQuote)
			quotesGroup.Delete("/:quoteID", quotes.DeleteQuote)
			quotesGroup.Put("/:quoteID/items", quotes.ReplaceItems)
			quotesGroup.Post("/:quoteID/transition", quotes.TransitionQuote)
			quotesGroup.Post("/:quoteID/dispatch", dispatch.DispatchQuote)
			quotesGroup.Get("/:quoteID/document", dispatch.GetQuoteDocument)
		}

		apiGroup.Get("/reminders/escalation", reminders.GetEscalation)
	}

	return app
}

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
}
