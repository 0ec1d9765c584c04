package quote

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/nordbill/backoffice/common"
	customerDal "github.com/nordbill/backoffice/customer/dal"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/quote/dal"
	"github.com/nordbill/backoffice/quote/domain"
	"github.com/nordbill/backoffice/times"
)

const (
	vatRateEnvVar   = "BILLING_VAT_RATE"
	validDaysEnvVar = "QUOTE_VALID_DAYS"
)

// CreateQuoteRequest is the input for a new draft quote. ValidUntil is
// optional; the service default validity window applies when absent.
type CreateQuoteRequest struct {
	CustomerID string     `json:"customerId" validate:"required"`
	Title      string     `json:"title" validate:"required"`
	ValidUntil *time.Time `json:"validUntil"`
	Notes      string     `json:"notes"`
	Terms      string     `json:"terms"`
}

// QuoteService owns quote creation, item editing and the quote lifecycle.
type QuoteService struct {
	loggerProvider logger.Provider
	quotesDAL      dal.Quotes
	customersDAL   customerDal.Customers
	vatRate        decimal.Decimal
	policy         money.Policy
	validDays      int
}

func NewQuoteService(log logger.Provider, conn *connection.Connection) *QuoteService {
	return &QuoteService{
		log,
		dal.NewQuotesFirestoreWithClient(conn.Firestore),
		customerDal.NewCustomersFirestoreWithClient(conn.Firestore),
		envDecimal(vatRateEnvVar, "25"),
		money.DefaultPolicy,
		envInt(validDaysEnvVar, 30),
	}
}

func (s *QuoteService) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*domain.Quote, error) {
	l := s.loggerProvider(ctx)

	if _, err := s.customersDAL.GetCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	today := times.CurrentDayUTC()

	validUntil := today.AddDate(0, 0, s.validDays)
	if req.ValidUntil != nil {
		validUntil = times.DayUTC(*req.ValidUntil)
	}

	quote := &domain.Quote{
		CustomerID: req.CustomerID,
		Title:      req.Title,
		ValidFrom:  today,
		ValidUntil: validUntil,
		VATRate:    s.vatRate.InexactFloat64(),
		Status:     domain.StatusDraft,
		Notes:      req.Notes,
		Terms:      req.Terms,
	}

	stored, err := s.quotesDAL.CreateQuote(ctx, quote)
	if err != nil {
		return nil, errors.Wrapf(err, "creating quote for customer %s", req.CustomerID)
	}

	l.Infof("quote %s (#%s) created for customer %s", stored.ID, stored.FormattedNumber(), stored.CustomerID)

	return stored, nil
}

func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.quotesDAL.GetQuote(ctx, quoteID)
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	return s.quotesDAL.ListQuotes(ctx)
}

func (s *QuoteService) GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error) {
	return s.quotesDAL.GetItems(ctx, quoteID)
}

// DeleteQuote removes the quote and cascades to its items.
func (s *QuoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	if err := s.quotesDAL.DeleteQuote(ctx, quoteID); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("quote %s deleted", quoteID)

	return nil
}

// Transition applies one named lifecycle action to the quote and returns the
// stored result.
func (s *QuoteService) Transition(ctx context.Context, quoteID string, action domain.Action) (*domain.Quote, error) {
	return s.applyTransition(ctx, quoteID, action, "")
}

// MarkSent marks the quote sent and records the recipient address.
func (s *QuoteService) MarkSent(ctx context.Context, quoteID, sentTo string) (*domain.Quote, error) {
	return s.applyTransition(ctx, quoteID, domain.ActionMarkSent, sentTo)
}

func (s *QuoteService) applyTransition(ctx context.Context, quoteID string, action domain.Action, sentTo string) (*domain.Quote, error) {
	l := s.loggerProvider(ctx)

	quote, err := s.quotesDAL.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	next, err := nextStatus(quote.Status, action)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	update := dal.StatusUpdate{Status: next}

	switch action {
	case domain.ActionMarkSent:
		update.SentAt = &now
		update.SentToEmail = sentTo
	case domain.ActionAccept:
		update.AcceptedAt = &now
	case domain.ActionDecline:
		update.DeclinedAt = &now
	}

	updated, err := s.quotesDAL.UpdateStatus(ctx, quoteID, update)
	if err != nil {
		return nil, err
	}

	l.Infof("quote %s: %s -> %s (%s)", quoteID, quote.Status, updated.Status, action)

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
