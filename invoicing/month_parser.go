package invoicing

import (
	"time"

	"github.com/nordbill/backoffice/framework/web"
	"github.com/nordbill/backoffice/times"
)

type InvoiceMonthParser interface {
	GetInvoiceMonth(invoiceMonthInput string) (time.Time, error)
	GetInvoicingDaySwitchOver() int
}

// DefaultInvoiceMonthParser resolves the billing month for a generation run.
// Without explicit input, runs early in a month still target the previous
// month until the switch-over day has passed.
type DefaultInvoiceMonthParser struct {
	InvoicingDaySwitchOver int
}

func (s *DefaultInvoiceMonthParser) GetInvoiceMonth(invoiceMonthInput string) (time.Time, error) {
	var invoiceMonth time.Time

	now := time.Now().UTC()

	if invoiceMonthInput != "" {
		parsedMonth, err := times.ParseYearMonth(invoiceMonthInput)
		if err != nil {
			return invoiceMonth, err
		}

		if parsedMonth.After(now) {
			return invoiceMonth, web.ErrBadRequest
		}

		invoiceMonth = parsedMonth
	} else {
		invoiceMonth = times.MonthStartUTC(now)
		currentMonth := now.Day() > s.InvoicingDaySwitchOver

		if !currentMonth {
			invoiceMonth = invoiceMonth.AddDate(0, -1, 0)
		}
	}

	return invoiceMonth, nil
}

func (s *DefaultInvoiceMonthParser) GetInvoicingDaySwitchOver() int {
	return s.InvoicingDaySwitchOver
}
