package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/quote/dal"
	"github.com/nordbill/backoffice/quote/domain"
)

type Quotes struct {
	mock.Mock
}

func (m *Quotes) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)

	var quote *domain.Quote
	if args.Get(0) != nil {
		quote = args.Get(0).(*domain.Quote)
	}

	return quote, args.Error(1)
}

func (m *Quotes) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	args := m.Called(ctx)

	var quotes []*domain.Quote
	if args.Get(0) != nil {
		quotes = args.Get(0).([]*domain.Quote)
	}

	return quotes, args.Error(1)
}

func (m *Quotes) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)

	var created *domain.Quote
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Quote)
	}

	return created, args.Error(1)
}

func (m *Quotes) DeleteQuote(ctx context.Context, quoteID string) error {
	args := m.Called(ctx, quoteID)

	return args.Error(0)
}

func (m *Quotes) GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error) {
	args := m.Called(ctx, quoteID)

	var items []*domain.QuoteItem
	if args.Get(0) != nil {
		items = args.Get(0).([]*domain.QuoteItem)
	}

	return items, args.Error(1)
}

func (m *Quotes) ReplaceItems(ctx context.Context, quoteID string, items []*domain.QuoteItem, totals dal.TotalsUpdate) error {
	args := m.Called(ctx, quoteID, items, totals)

	return args.Error(0)
}

func (m *Quotes) UpdateStatus(ctx context.Context, quoteID string, update dal.StatusUpdate) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, update)

	var quote *domain.Quote
	if args.Get(0) != nil {
		quote = args.Get(0).(*domain.Quote)
	}

	return quote, args.Error(1)
}
