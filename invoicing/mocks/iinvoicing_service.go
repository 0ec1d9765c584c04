package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/invoicing/domain"
)

type IInvoicingService struct {
	mock.Mock
}

func (m *IInvoicingService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}

func (m *IInvoicingService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	args := m.Called(ctx)

	var invoices []*domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]*domain.Invoice)
	}

	return invoices, args.Error(1)
}

func (m *IInvoicingService) GenerateInvoicesForPeriod(ctx context.Context, monthInput string) ([]*domain.Invoice, error) {
	args := m.Called(ctx, monthInput)

	var invoices []*domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]*domain.Invoice)
	}

	return invoices, args.Error(1)
}

func (m *IInvoicingService) Transition(ctx context.Context, invoiceID string, action domain.Action) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, action)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}

func (m *IInvoicingService) MarkSent(ctx context.Context, invoiceID, sentTo string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, sentTo)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}
