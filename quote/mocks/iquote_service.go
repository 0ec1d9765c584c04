package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/quote"
	"github.com/nordbill/backoffice/quote/domain"
)

type IQuoteService struct {
	mock.Mock
}

func (m *IQuoteService) CreateQuote(ctx context.Context, req quote.CreateQuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)

	var q *domain.Quote
	if args.Get(0) != nil {
		q = args.Get(0).(*domain.Quote)
	}

	return q, args.Error(1)
}

func (m *IQuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)

	var q *domain.Quote
	if args.Get(0) != nil {
		q = args.Get(0).(*domain.Quote)
	}

	return q, args.Error(1)
}

func (m *IQuoteService) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	args := m.Called(ctx)

	var quotes []*domain.Quote
	if args.Get(0) != nil {
		quotes = args.Get(0).([]*domain.Quote)
	}

	return quotes, args.Error(1)
}

func (m *IQuoteService) GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error) {
	args := m.Called(ctx, quoteID)

	var items []*domain.QuoteItem
	if args.Get(0) != nil {
		items = args.Get(0).([]*domain.QuoteItem)
	}

	return items, args.Error(1)
}

func (m *IQuoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	args := m.Called(ctx, quoteID)

	return args.Error(0)
}

func (m *IQuoteService) ReplaceItems(ctx context.Context, quoteID string, inputs []quote.ItemInput) (*domain.Quote, []*domain.QuoteItem, error) {
	args := m.Called(ctx, quoteID, inputs)

	var q *domain.Quote
	if args.Get(0) != nil {
		q = args.Get(0).(*domain.Quote)
	}

	var items []*domain.QuoteItem
	if args.Get(1) != nil {
		items = args.Get(1).([]*domain.QuoteItem)
	}

	return q, items, args.Error(2)
}

func (m *IQuoteService) ComputeQuoteTotals(inputs []quote.ItemInput, vatRate decimal.Decimal) (money.Totals, error) {
	args := m.Called(inputs, vatRate)

	return args.Get(0).(money.Totals), args.Error(1)
}

func (m *IQuoteService) DefaultVATRate() decimal.Decimal {
	args := m.Called()

	return args.Get(0).(decimal.Decimal)
}

func (m *IQuoteService) Transition(ctx context.Context, quoteID string, action domain.Action) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, action)

	var q *domain.Quote
	if args.Get(0) != nil {
		q = args.Get(0).(*domain.Quote)
	}

	return q, args.Error(1)
}

func (m *IQuoteService) MarkSent(ctx context.Context, quoteID, sentTo string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, sentTo)

	var q *domain.Quote
	if args.Get(0) != nil {
		q = args.Get(0).(*domain.Quote)
	}

	return q, args.Error(1)
}
