package dal

import (
	"context"
	"time"

	"github.com/nordbill/backoffice/quote/domain"
)

// StatusUpdate carries one lifecycle move to the store. Only non-zero
// optional fields are written.
type StatusUpdate struct {
	Status      domain.Status
	SentAt      *time.Time
	SentToEmail string
	AcceptedAt  *time.Time
	DeclinedAt  *time.Time
}

// TotalsUpdate carries recomputed cached totals alongside an item replace.
type TotalsUpdate struct {
	Subtotal  float64
	VATAmount float64
	Total     float64
}

//go:generate mockery --name Quotes --output ./mocks
type Quotes interface {
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)

	// CreateQuote stores a new quote, allocating the next sequence number
	// from the shared counter.
	CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)

	// DeleteQuote removes the quote and all of its items together.
	DeleteQuote(ctx context.Context, quoteID string) error

	GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error)

	// ReplaceItems deletes every existing item of the quote and inserts the
	// new set, updating the quote's cached totals, in one transaction.
	// Partial patches are not supported; they could desynchronize sort
	// order and cached totals.
	ReplaceItems(ctx context.Context, quoteID string, items []*domain.QuoteItem, totals TotalsUpdate) error

	// UpdateStatus applies the lifecycle move and returns the stored quote.
	UpdateStatus(ctx context.Context, quoteID string, update StatusUpdate) (*domain.Quote, error)
}
