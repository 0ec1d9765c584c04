package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	companyMocks "github.com/nordbill/backoffice/company/dal/mocks"
	companyDomain "github.com/nordbill/backoffice/company/domain"
	customerMocks "github.com/nordbill/backoffice/customer/dal/mocks"
	customerDomain "github.com/nordbill/backoffice/customer/domain"
	invoiceDomain "github.com/nordbill/backoffice/invoicing/domain"
	invoiceMocks "github.com/nordbill/backoffice/invoicing/mocks"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/mailer"
	mailerMocks "github.com/nordbill/backoffice/mailer/mocks"
	quoteDomain "github.com/nordbill/backoffice/quote/domain"
	quoteMocks "github.com/nordbill/backoffice/quote/mocks"
)

type fields struct {
	invoices  *invoiceMocks.IInvoicingService
	quotes    *quoteMocks.IQuoteService
	customers *customerMocks.Customers
	company   *companyMocks.Company
	transport *mailerMocks.Transport
}

func newFields() *fields {
	return &fields{
		invoices:  &invoiceMocks.IInvoicingService{},
		quotes:    &quoteMocks.IQuoteService{},
		customers: &customerMocks.Customers{},
		company:   &companyMocks.Company{},
		transport: &mailerMocks.Transport{},
	}
}

func (f *fields) service() *Service {
	return &Service{
		loggerProvider: logger.FromContext,
		invoices:       f.invoices,
		quotes:         f.quotes,
		customersDAL:   f.customers,
		companyDAL:     f.company,
		transport:      f.transport,
	}
}

func pendingInvoice() *invoiceDomain.Invoice {
	return &invoiceDomain.Invoice{
		ID:          "inv-1",
		Number:      42,
		CustomerID:  "acme",
		InvoiceDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Amount:      5000,
		VATRate:     25,
		VATAmount:   1250,
		Total:       6250,
		Status:      invoiceDomain.StatusPending,
		Description: "Serviceavtale drift",
	}
}

func acmeCustomer() *customerDomain.Customer {
	return &customerDomain.Customer{
		ID:      "acme",
		Name:    "Bakketun Barnehage",
		Email:   "post@bakketun.no",
		Address: "Lia 12\n1360 Fornebu",
	}
}

func issuerProfile() *companyDomain.Profile {
	return &companyDomain.Profile{
		Name:      "Fjellverk AS",
		Address:   "Storgata 1\n0155 Oslo",
		OrgNumber: "987 654 321",
		Email:     "post@fjellverk.no",
		Payment:   companyDomain.PaymentChannels{BankAccount: "1234.56.78903"},
	}
}

func TestService_DispatchInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("renders, sends and marks sent in order", func(t *testing.T) {
		f := newFields()
		f.invoices.On("GetInvoice", ctx, "inv-1").Return(pendingInvoice(), nil)
		f.customers.On("GetCustomer", ctx, "acme").Return(acmeCustomer(), nil)
		f.company.On("GetProfile", ctx).Return(issuerProfile(), nil)
		f.transport.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
			return msg.To == "post@bakketun.no" &&
				len(msg.Attachments) == 1 &&
				msg.Attachments[0].Filename == "invoice-0042.pdf" &&
				msg.Attachments[0].ContentType == "application/pdf" &&
				len(msg.Attachments[0].Data) > 0
		})).Return(nil)

		sent := pendingInvoice()
		sent.Status = invoiceDomain.StatusSent
		sent.SentTo = "post@bakketun.no"
		f.invoices.On("MarkSent", ctx, "inv-1", "post@bakketun.no").Return(sent, nil)

		got, err := f.service().DispatchInvoice(ctx, "inv-1")

		require.NoError(t, err)
		assert.Equal(t, invoiceDomain.StatusSent, got.Status)
		f.transport.AssertExpectations(t)
		f.invoices.AssertExpectations(t)
	})

	t.Run("already sent invoice is not dispatched again", func(t *testing.T) {
		f := newFields()
		invoice := pendingInvoice()
		invoice.Status = invoiceDomain.StatusSent
		f.invoices.On("GetInvoice", ctx, "inv-1").Return(invoice, nil)

		_, err := f.service().DispatchInvoice(ctx, "inv-1")

		assert.ErrorIs(t, err, ErrNotSendable)
		f.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("missing recipient email aborts before rendering", func(t *testing.T) {
		f := newFields()
		customer := acmeCustomer()
		customer.Email = ""
		f.invoices.On("GetInvoice", ctx, "inv-1").Return(pendingInvoice(), nil)
		f.customers.On("GetCustomer", ctx, "acme").Return(customer, nil)

		_, err := f.service().DispatchInvoice(ctx, "inv-1")

		assert.ErrorIs(t, err, ErrMissingRecipientEmail)
		f.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("transport failure leaves status untouched and is retryable", func(t *testing.T) {
		f := newFields()
		f.invoices.On("GetInvoice", ctx, "inv-1").Return(pendingInvoice(), nil)
		f.customers.On("GetCustomer", ctx, "acme").Return(acmeCustomer(), nil)
		f.company.On("GetProfile", ctx).Return(issuerProfile(), nil)
		f.transport.On("Send", ctx, mock.Anything).Return(assert.AnError)

		_, err := f.service().DispatchInvoice(ctx, "inv-1")

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "inv-1", transportErr.EntityID)
		f.invoices.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("status write failure after a successful send is reported distinctly", func(t *testing.T) {
		f := newFields()
		f.invoices.On("GetInvoice", ctx, "inv-1").Return(pendingInvoice(), nil)
		f.customers.On("GetCustomer", ctx, "acme").Return(acmeCustomer(), nil)
		f.company.On("GetProfile", ctx).Return(issuerProfile(), nil)
		f.transport.On("Send", ctx, mock.Anything).Return(nil)
		f.invoices.On("MarkSent", ctx, "inv-1", "post@bakketun.no").Return(nil, assert.AnError)

		_, err := f.service().DispatchInvoice(ctx, "inv-1")

		var postSendErr *PostSendTransitionError
		require.ErrorAs(t, err, &postSendErr)
		assert.Equal(t, "inv-1", postSendErr.EntityID)
		assert.Equal(t, "post@bakketun.no", postSendErr.SentTo)
	})
}

func TestService_DispatchQuote(t *testing.T) {
	ctx := context.Background()

	draftQuote := func() *quoteDomain.Quote {
		return &quoteDomain.Quote{
			ID:         "q-1",
			Number:     7,
			CustomerID: "acme",
			Title:      "Oppgradering av anlegg",
			ValidFrom:  time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			ValidUntil: time.Date(2026, 9, 27, 0, 0, 0, 0, time.UTC),
			VATRate:    25,
			Subtotal:   5000,
			VATAmount:  1250,
			Total:      6250,
			Status:     quoteDomain.StatusDraft,
		}
	}

	items := []*quoteDomain.QuoteItem{
		{Description: "Montering", Quantity: 3, Unit: "timer", UnitPrice: 1200, Total: 3600, SortOrder: 0},
		{Description: "Materiell", Quantity: 1, UnitPrice: 1400, Total: 1400, SortOrder: 1},
	}

	t.Run("dispatches a draft quote", func(t *testing.T) {
		f := newFields()
		f.quotes.On("GetQuote", ctx, "q-1").Return(draftQuote(), nil)
		f.customers.On("GetCustomer", ctx, "acme").Return(acmeCustomer(), nil)
		f.quotes.On("GetItems", ctx, "q-1").Return(items, nil)
		f.company.On("GetProfile", ctx).Return(issuerProfile(), nil)
		f.transport.On("Send", ctx, mock.MatchedBy(func(msg *mailer.Message) bool {
			return len(msg.Attachments) == 1 && msg.Attachments[0].Filename == "quote-0007.pdf"
		})).Return(nil)

		sent := draftQuote()
		sent.Status = quoteDomain.StatusSent
		f.quotes.On("MarkSent", ctx, "q-1", "post@bakketun.no").Return(sent, nil)

		got, err := f.service().DispatchQuote(ctx, "q-1")

		require.NoError(t, err)
		assert.Equal(t, quoteDomain.StatusSent, got.Status)
		f.quotes.AssertExpectations(t)
	})

	t.Run("accepted quote is not sendable", func(t *testing.T) {
		f := newFields()
		q := draftQuote()
		q.Status = quoteDomain.StatusAccepted
		f.quotes.On("GetQuote", ctx, "q-1").Return(q, nil)

		_, err := f.service().DispatchQuote(ctx, "q-1")

		assert.ErrorIs(t, err, ErrNotSendable)
		f.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestService_RenderInvoiceDocument(t *testing.T) {
	ctx := context.Background()

	f := newFields()
	f.invoices.On("GetInvoice", ctx, "inv-1").Return(pendingInvoice(), nil)
	f.customers.On("GetCustomer", ctx, "acme").Return(acmeCustomer(), nil)
	f.company.On("GetProfile", ctx).Return(issuerProfile(), nil)

	pdf, filename, err := f.service().RenderInvoiceDocument(ctx, "inv-1")

	require.NoError(t, err)
	assert.Equal(t, "invoice-0042.pdf", filename)
	assert.NotEmpty(t, pdf)
	f.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
