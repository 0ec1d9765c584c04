package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	customerDomain "github.com/nordbill/backoffice/customer/domain"
	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/times"
)

// GenerateInvoicesForPeriod creates the missing recurring invoices for the
// given billing month ("YYYY-MM", or empty for the parser's default month).
//
// The set of already-billed (customer, month) pairs is recomputed from the
// live invoice set on every run, and each insert re-checks for a duplicate
// inside a transaction, so repeated and concurrent runs for the same month
// are idempotent: a collision is a no-op, not an error.
func (s *InvoicingService) GenerateInvoicesForPeriod(ctx context.Context, monthInput string) ([]*domain.Invoice, error) {
	l := s.loggerProvider(ctx)

	month, err := s.monthParser.GetInvoiceMonth(monthInput)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoicesDAL.ListInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing existing invoices")
	}

	billed := domain.BilledPeriods(invoices)

	customers, err := s.customersDAL.GetCustomersWithActiveAgreement(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing customers with active agreement")
	}

	var (
		created       []*domain.Invoice
		alreadyBilled int
		result        *multierror.Error
	)

	for _, customer := range customers {
		// no invoice amount can be synthesized without a priced agreement
		if !customer.HasBillableAgreement() {
			continue
		}

		if _, ok := billed[domain.NewPeriodKey(customer.ID, month)]; ok {
			alreadyBilled++
			continue
		}

		invoice, err := s.buildInvoice(customer, month)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "building invoice for customer %s", customer.ID))
			continue
		}

		stored, err := s.invoicesDAL.CreateForPeriod(ctx, invoice)
		if err != nil {
			if errors.Is(err, dal.ErrDuplicateBillingPeriod) {
				// a concurrent run won the insert; nothing to do
				l.Infof("invoice generation: customer %s already billed for %s", customer.ID, month.Format(times.YearMonthLayout))

				alreadyBilled++

				continue
			}

			result = multierror.Append(result, errors.Wrapf(err, "creating invoice for customer %s", customer.ID))

			continue
		}

		created = append(created, stored)
	}

	l.Infof("invoice generation for %s: %d created, %d already billed, %d candidates",
		month.Format(times.YearMonthLayout), len(created), alreadyBilled, len(customers))

	return created, result.ErrorOrNil()
}

func (s *InvoicingService) buildInvoice(customer *customerDomain.Customer, month time.Time) (*domain.Invoice, error) {
	amount := decimal.NewFromFloat(customer.Agreement.MonthlyPrice)

	vatAmount, err := money.VATOf(amount, s.vatRate, s.policy)
	if err != nil {
		return nil, err
	}

	today := times.CurrentDayUTC()

	return &domain.Invoice{
		CustomerID:  customer.ID,
		InvoiceDate: today,
		DueDate:     today.AddDate(0, 0, s.dueInDays),
		PeriodStart: times.MonthStartUTC(month),
		PeriodEnd:   times.MonthEndUTC(month),
		Amount:      amount.InexactFloat64(),
		VATRate:     s.vatRate.InexactFloat64(),
		VATAmount:   vatAmount.InexactFloat64(),
		Total:       amount.Add(vatAmount).InexactFloat64(),
		Status:      domain.StatusPending,
		Description: fmt.Sprintf("Service agreement (%s) for %s", customer.Agreement.Type, month.Format("January 2006")),
	}, nil
}
