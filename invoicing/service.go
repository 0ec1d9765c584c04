package invoicing

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordbill/backoffice/common"
	customerDal "github.com/nordbill/backoffice/customer/dal"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/money"
)

const (
	vatRateEnvVar       = "BILLING_VAT_RATE"
	dueDaysEnvVar       = "BILLING_DUE_DAYS"
	daySwitchOverEnvVar = "BILLING_DAY_SWITCHOVER"
)

// InvoicingService owns recurring invoice generation and the invoice
// lifecycle. All status writes go through here so transition legality and
// dedup are enforced once, not at each call site.
type InvoicingService struct {
	loggerProvider logger.Provider
	invoicesDAL    dal.Invoices
	customersDAL   customerDal.Customers
	monthParser    InvoiceMonthParser
	vatRate        decimal.Decimal
	policy         money.Policy
	dueInDays      int
}

func NewInvoicingService(log logger.Provider, conn *connection.Connection) *InvoicingService {
	return &InvoicingService{
		log,
		dal.NewInvoicesFirestoreWithClient(conn.Firestore),
		customerDal.NewCustomersFirestoreWithClient(conn.Firestore),
		&DefaultInvoiceMonthParser{InvoicingDaySwitchOver: envInt(daySwitchOverEnvVar, 10)},
		envDecimal(vatRateEnvVar, "25"),
		money.DefaultPolicy,
		envInt(dueDaysEnvVar, 14),
	}
}

func (s *InvoicingService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoicesDAL.GetInvoice(ctx, invoiceID)
}

func (s *InvoicingService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	return s.invoicesDAL.ListInvoices(ctx)
}

// Transition applies one named lifecycle action to the invoice and returns
// the stored result. The stored invoice is ground truth; callers must
// reconcile from the return value, never from a local copy.
func (s *InvoicingService) Transition(ctx context.Context, invoiceID string, action domain.Action) (*domain.Invoice, error) {
	return s.applyTransition(ctx, invoiceID, action, "")
}

// MarkSent marks the invoice sent and records the recipient address.
func (s *InvoicingService) MarkSent(ctx context.Context, invoiceID, sentTo string) (*domain.Invoice, error) {
	return s.applyTransition(ctx, invoiceID, domain.ActionMarkSent, sentTo)
}

func (s *InvoicingService) applyTransition(ctx context.Context, invoiceID string, action domain.Action, sentTo string) (*domain.Invoice, error) {
	l := s.loggerProvider(ctx)

	invoice, err := s.invoicesDAL.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	next, err := nextStatus(invoice.Status, action)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	update := dal.StatusUpdate{Status: next}

	switch action {
	case domain.ActionMarkSent:
		update.SentAt = &now
		update.SentTo = sentTo
	case domain.ActionMarkPaid:
		update.PaidAt = &now
	case domain.ActionCancel:
		update.CancelledAt = &now
	}

	updated, err := s.invoicesDAL.UpdateStatus(ctx, invoiceID, update)
	if err != nil {
		return nil, err
	}

	l.Infof("invoice %s: %s -> %s (%s)", invoiceID, invoice.Status, updated.Status, action)

	return updated, nil
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(common.GetEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}

	return v
}

func envDecimal(key, fallback string) decimal.Decimal {
	v, err := decimal.NewFromString(common.GetEnv(key, fallback))
	if err != nil {
		return decimal.RequireFromString(fallback)
	}

	return v
}
