package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unitPrice string
		want      string
		wantErr   error
	}{
		{name: "single unit", quantity: "1", unitPrice: "5000", want: "5000"},
		{name: "fractional quantity", quantity: "2.5", unitPrice: "1200", want: "3000"},
		{name: "zero quantity", quantity: "0", unitPrice: "995", want: "0"},
		{name: "negative quantity", quantity: "-1", unitPrice: "100", wantErr: ErrInvalidLineItem},
		{name: "negative price", quantity: "1", unitPrice: "-100", wantErr: ErrInvalidLineItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLineTotal(dec(tt.quantity), dec(tt.unitPrice))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNewLineRejectsNonNumericInput(t *testing.T) {
	_, err := NewLine("two", "100")
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	_, err = NewLine("2", "a lot")
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		lines         []Line
		vatRate       string
		wantSubtotal  string
		wantVATAmount string
		wantTotal     string
	}{
		{
			name:          "single item 25 percent",
			lines:         []Line{{Quantity: dec("1"), UnitPrice: dec("5000")}},
			vatRate:       "25",
			wantSubtotal:  "5000",
			wantVATAmount: "1250",
			wantTotal:     "6250",
		},
		{
			name:          "half up at aggregate",
			lines:         []Line{{Quantity: dec("1"), UnitPrice: dec("795")}},
			vatRate:       "25",
			wantSubtotal:  "795",
			wantVATAmount: "199",
			wantTotal:     "994",
		},
		{
			name: "rounded once not per line",
			lines: []Line{
				{Quantity: dec("1"), UnitPrice: dec("1.25")},
				{Quantity: dec("1"), UnitPrice: dec("1.25")},
			},
			vatRate:       "25",
			wantSubtotal:  "2.5",
			wantVATAmount: "1",
			wantTotal:     "3.5",
		},
		{
			name:          "zero vat",
			lines:         []Line{{Quantity: dec("3"), UnitPrice: dec("100")}},
			vatRate:       "0",
			wantSubtotal:  "300",
			wantVATAmount: "0",
			wantTotal:     "300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.lines, dec(tt.vatRate), DefaultPolicy)
			require.NoError(t, err)

			assert.True(t, dec(tt.wantSubtotal).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, dec(tt.wantVATAmount).Equal(got.VATAmount), "vat %s", got.VATAmount)
			assert.True(t, dec(tt.wantTotal).Equal(got.Total), "total %s", got.Total)

			// total = subtotal + vat exactly, for every case
			assert.True(t, got.Subtotal.Add(got.VATAmount).Equal(got.Total))
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	lines := []Line{
		{Quantity: dec("3"), UnitPrice: dec("333.33")},
		{Quantity: dec("0.5"), UnitPrice: dec("1790")},
	}

	first, err := ComputeTotals(lines, dec("25"), DefaultPolicy)
	require.NoError(t, err)

	second, err := ComputeTotals(lines, dec("25"), DefaultPolicy)
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.VATAmount.String(), second.VATAmount.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestComputeTotalsRejectsNegativeRate(t *testing.T) {
	_, err := ComputeTotals(nil, dec("-25"), DefaultPolicy)
	assert.ErrorIs(t, err, ErrInvalidVATRate)
}

func TestVATOf(t *testing.T) {
	got, err := VATOf(dec("795"), dec("25"), DefaultPolicy)
	require.NoError(t, err)
	assert.True(t, dec("199").Equal(got), "got %s", got)

	halfEven := Policy{Mode: RoundHalfEven, Decimals: 0}

	got, err = VATOf(dec("795"), dec("25"), halfEven)
	require.NoError(t, err)
	// 198.75 rounds to the even neighbour under banker's rounding
	assert.True(t, dec("199").Equal(got), "got %s", got)

	got, err = VATOf(dec("790"), dec("25"), halfEven)
	require.NoError(t, err)
	// 197.5 → 198 half-up, 198 half-even; 198.5 would differ
	assert.True(t, dec("198").Equal(got), "got %s", got)
}
