// Package dispatch coordinates delivering an invoice or quote: render the
// document, email it, then advance the lifecycle state. The three stages
// fail distinctly so the caller always knows whether a message may already
// have gone out.
package dispatch

import (
	"context"

	"github.com/pkg/errors"

	companyDal "github.com/nordbill/backoffice/company/dal"
	customerDal "github.com/nordbill/backoffice/customer/dal"
	"github.com/nordbill/backoffice/document"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/invoicing"
	invoiceDomain "github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/mailer"
	"github.com/nordbill/backoffice/quote"
	quoteDomain "github.com/nordbill/backoffice/quote/domain"
)

const (
	entityInvoice = "invoice"
	entityQuote   = "quote"
)

type invoiceDispatcher interface {
	GetInvoice(ctx context.Context, invoiceID string) (*invoiceDomain.Invoice, error)
	MarkSent(ctx context.Context, invoiceID, sentTo string) (*invoiceDomain.Invoice, error)
}

type quoteDispatcher interface {
	GetQuote(ctx context.Context, quoteID string) (*quoteDomain.Quote, error)
	GetItems(ctx context.Context, quoteID string) ([]*quoteDomain.QuoteItem, error)
	MarkSent(ctx context.Context, quoteID, sentTo string) (*quoteDomain.Quote, error)
}

// Service runs the dispatch pipeline for invoices and quotes.
type Service struct {
	loggerProvider logger.Provider
	invoices       invoiceDispatcher
	quotes         quoteDispatcher
	customersDAL   customerDal.Customers
	companyDAL     companyDal.Company
	transport      mailer.Transport
}

func NewService(log logger.Provider, conn *connection.Connection) *Service {
	return &Service{
		log,
		invoicing.NewInvoicingService(log, conn),
		quote.NewQuoteService(log, conn),
		customerDal.NewCustomersFirestoreWithClient(conn.Firestore),
		companyDal.NewCompanyFirestoreWithClient(conn.Firestore),
		mailer.NewTransport(log),
	}
}

// DispatchInvoice renders the invoice, emails it to the customer and marks
// it sent. The steps run in strict order; a failure at any stage reports
// which stage was reached. The send itself is never retried here.
func (s *Service) DispatchInvoice(ctx context.Context, invoiceID string) (*invoiceDomain.Invoice, error) {
	l := s.loggerProvider(ctx)

	invoice, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	// re-checked here so a concurrent dispatch (e.g. a double click)
	// cannot email the same invoice twice
	if !invoice.IsSendable() {
		return nil, errors.Wrapf(ErrNotSendable, "invoice %s is %s", invoiceID, invoice.Status)
	}

	customer, err := s.customersDAL.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.Email == "" {
		return nil, errors.Wrapf(ErrMissingRecipientEmail, "customer %s", customer.ID)
	}

	profile, err := s.companyDAL.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	pdf, err := document.Render(invoiceDocumentModel(invoice, customer, profile))
	if err != nil {
		return nil, &RenderError{entityInvoice, invoiceID, err}
	}

	msg, err := composeInvoiceMessage(invoice, customer, profile, pdf)
	if err != nil {
		return nil, &RenderError{entityInvoice, invoiceID, err}
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		return nil, &TransportError{entityInvoice, invoiceID, err}
	}

	updated, err := s.invoices.MarkSent(ctx, invoiceID, customer.Email)
	if err != nil {
		return nil, &PostSendTransitionError{entityInvoice, invoiceID, customer.Email, err}
	}

	l.Infof("invoice %s dispatched to %s", invoiceID, customer.Email)

	return updated, nil
}

// DispatchQuote renders the quote with its items, emails it and marks it
// sent. Same stage semantics as DispatchInvoice.
func (s *Service) DispatchQuote(ctx context.Context, quoteID string) (*quoteDomain.Quote, error) {
	l := s.loggerProvider(ctx)

	q, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if !q.IsSendable() {
		return nil, errors.Wrapf(ErrNotSendable, "quote %s is %s", quoteID, q.Status)
	}

	customer, err := s.customersDAL.GetCustomer(ctx, q.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.Email == "" {
		return nil, errors.Wrapf(ErrMissingRecipientEmail, "customer %s", customer.ID)
	}

	items, err := s.quotes.GetItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	profile, err := s.companyDAL.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	pdf, err := document.Render(quoteDocumentModel(q, items, customer, profile))
	if err != nil {
		return nil, &RenderError{entityQuote, quoteID, err}
	}

	msg, err := composeQuoteMessage(q, customer, profile, pdf)
	if err != nil {
		return nil, &RenderError{entityQuote, quoteID, err}
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		return nil, &TransportError{entityQuote, quoteID, err}
	}

	updated, err := s.quotes.MarkSent(ctx, quoteID, customer.Email)
	if err != nil {
		return nil, &PostSendTransitionError{entityQuote, quoteID, customer.Email, err}
	}

	l.Infof("quote %s dispatched to %s", quoteID, customer.Email)

	return updated, nil
}

// RenderInvoiceDocument renders the invoice PDF without sending anything.
func (s *Service) RenderInvoiceDocument(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	customer, err := s.customersDAL.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		return nil, "", err
	}

	profile, err := s.companyDAL.GetProfile(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf, err := document.Render(invoiceDocumentModel(invoice, customer, profile))
	if err != nil {
		return nil, "", &RenderError{entityInvoice, invoiceID, err}
	}

	return pdf, invoice.DocumentName(), nil
}

// RenderQuoteDocument renders the quote PDF without sending anything.
func (s *Service) RenderQuoteDocument(ctx context.Context, quoteID string) ([]byte, string, error) {
	q, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}

	customer, err := s.customersDAL.GetCustomer(ctx, q.CustomerID)
	if err != nil {
		return nil, "", err
	}

	items, err := s.quotes.GetItems(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}

	profile, err := s.companyDAL.GetProfile(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf, err := document.Render(quoteDocumentModel(q, items, customer, profile))
	if err != nil {
		return nil, "", &RenderError{entityQuote, quoteID, err}
	}

	return pdf, q.DocumentName(), nil
}
