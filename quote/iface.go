package quote

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/quote/domain"
)

//go:generate mockery --name IQuoteService --output ./mocks
type IQuoteService interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*domain.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)
	GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error)
	DeleteQuote(ctx context.Context, quoteID string) error
	ReplaceItems(ctx context.Context, quoteID string, inputs []ItemInput) (*domain.Quote, []*domain.QuoteItem, error)
	ComputeQuoteTotals(inputs []ItemInput, vatRate decimal.Decimal) (money.Totals, error)
	DefaultVATRate() decimal.Decimal
	Transition(ctx context.Context, quoteID string, action domain.Action) (*domain.Quote, error)
	MarkSent(ctx context.Context, quoteID, sentTo string) (*domain.Quote, error)
}
