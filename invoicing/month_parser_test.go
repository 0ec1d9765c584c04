package invoicing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nordbill/backoffice/framework/web"
	"github.com/nordbill/backoffice/times"
)

func TestDefaultInvoiceMonthParser_GetInvoiceMonth(t *testing.T) {
	parser := &DefaultInvoiceMonthParser{InvoicingDaySwitchOver: 10}

	t.Run("explicit past month is parsed", func(t *testing.T) {
		got, err := parser.GetInvoiceMonth("2026-03")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("future month is rejected", func(t *testing.T) {
		future := time.Now().UTC().AddDate(0, 2, 0).Format(times.YearMonthLayout)

		_, err := parser.GetInvoiceMonth(future)

		assert.ErrorIs(t, err, web.ErrBadRequest)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		_, err := parser.GetInvoiceMonth("march 2026")

		assert.Error(t, err)
	})

	t.Run("empty input resolves around the switch-over day", func(t *testing.T) {
		got, err := parser.GetInvoiceMonth("")

		assert.NoError(t, err)

		now := time.Now().UTC()
		want := times.MonthStartUTC(now)

		if now.Day() <= parser.InvoicingDaySwitchOver {
			want = want.AddDate(0, -1, 0)
		}

		assert.Equal(t, want, got)
	})
}
