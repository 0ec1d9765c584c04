package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/domain"
)

type Invoices struct {
	mock.Mock
}

func (m *Invoices) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}

func (m *Invoices) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	args := m.Called(ctx)

	var invoices []*domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]*domain.Invoice)
	}

	return invoices, args.Error(1)
}

func (m *Invoices) CreateForPeriod(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)

	var created *domain.Invoice
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Invoice)
	}

	return created, args.Error(1)
}

func (m *Invoices) UpdateStatus(ctx context.Context, invoiceID string, update dal.StatusUpdate) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, update)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}
