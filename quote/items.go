package quote

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/quote/dal"
	"github.com/nordbill/backoffice/quote/domain"
)

// ItemInput is one line of a quote edit. Quantity and unit price arrive as
// strings and are parsed as decimals; non-numeric input is rejected before
// any write happens.
type ItemInput struct {
	Description string `json:"description" binding:"required"`
	Details     string `json:"details"`
	Quantity    string `json:"quantity" binding:"required"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unitPrice" binding:"required"`
}

// ReplaceItems swaps the quote's full item set for the given one and
// recomputes the cached totals. Partial edits are not supported: the whole
// set is validated, priced and written in one transaction so sort order and
// totals cannot desynchronize.
func (s *QuoteService) ReplaceItems(ctx context.Context, quoteID string, inputs []ItemInput) (*domain.Quote, []*domain.QuoteItem, error) {
	l := s.loggerProvider(ctx)

	quote, err := s.quotesDAL.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}

	if !quote.IsEditable() {
		return nil, nil, errors.Wrapf(ErrQuoteNotEditable, "quote %s is %s", quoteID, quote.Status)
	}

	items, totals, err := priceItems(inputs, decimal.NewFromFloat(quote.VATRate), s.policy)
	if err != nil {
		return nil, nil, err
	}

	update := dal.TotalsUpdate{
		Subtotal:  totals.Subtotal.InexactFloat64(),
		VATAmount: totals.VATAmount.InexactFloat64(),
		Total:     totals.Total.InexactFloat64(),
	}

	if err := s.quotesDAL.ReplaceItems(ctx, quoteID, items, update); err != nil {
		return nil, nil, errors.Wrapf(err, "replacing items of quote %s", quoteID)
	}

	updated, err := s.quotesDAL.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}

	l.Infof("quote %s: %d items replaced, total %v", quoteID, len(items), update.Total)

	return updated, items, nil
}

// ComputeQuoteTotals prices an item set under the VAT rate without touching
// any quote. Used to preview totals while a quote form is being edited.
func (s *QuoteService) ComputeQuoteTotals(inputs []ItemInput, vatRate decimal.Decimal) (money.Totals, error) {
	_, totals, err := priceItems(inputs, vatRate, s.policy)

	return totals, err
}

// DefaultVATRate is the rate applied to new quotes.
func (s *QuoteService) DefaultVATRate() decimal.Decimal {
	return s.vatRate
}

func priceItems(inputs []ItemInput, vatRate decimal.Decimal, policy money.Policy) ([]*domain.QuoteItem, money.Totals, error) {
	items := make([]*domain.QuoteItem, 0, len(inputs))
	lines := make([]money.Line, 0, len(inputs))

	for i, input := range inputs {
		line, err := money.NewLine(input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, money.Totals{}, errors.Wrapf(err, "item %d (%s)", i, input.Description)
		}

		total, err := line.Total()
		if err != nil {
			return nil, money.Totals{}, errors.Wrapf(err, "item %d (%s)", i, input.Description)
		}

		lines = append(lines, line)
		items = append(items, &domain.QuoteItem{
			Description: input.Description,
			Details:     input.Details,
			Quantity:    line.Quantity.InexactFloat64(),
			Unit:        input.Unit,
			UnitPrice:   line.UnitPrice.InexactFloat64(),
			Total:       total.InexactFloat64(),
			SortOrder:   i,
		})
	}

	totals, err := money.ComputeTotals(lines, vatRate, policy)
	if err != nil {
		return nil, money.Totals{}, err
	}

	return items, totals, nil
}
