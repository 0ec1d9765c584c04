package invoicing

import (
	"context"

	"github.com/nordbill/backoffice/invoicing/domain"
)

//go:generate mockery --name IInvoicingService --output ./mocks
type IInvoicingService interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)
	GenerateInvoicesForPeriod(ctx context.Context, monthInput string) ([]*domain.Invoice, error)
	Transition(ctx context.Context, invoiceID string, action domain.Action) (*domain.Invoice, error)
	MarkSent(ctx context.Context, invoiceID, sentTo string) (*domain.Invoice, error)
}
