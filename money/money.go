// Package money implements the monetary arithmetic shared by invoices and
// quotes. All computation is done with fixed-point decimals so repeated
// evaluation of the same input is byte-identical.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidLineItem is returned for negative or non-numeric quantities and prices.
	ErrInvalidLineItem = errors.New("invalid line item: quantity and unit price must be non-negative numbers")

	// ErrInvalidVATRate is returned for a negative VAT rate.
	ErrInvalidVATRate = errors.New("invalid vat rate: must be non-negative")
)

// RoundingMode names how the aggregate VAT amount is rounded.
type RoundingMode int

const (
	// RoundHalfUp rounds .5 away from zero. This is the documented default.
	RoundHalfUp RoundingMode = iota

	// RoundHalfEven rounds .5 to the nearest even digit (banker's rounding).
	RoundHalfEven
)

// Policy is the named rounding policy applied wherever totals are computed
// or previewed. Decimals is the currency's smallest printed unit; whole
// kroner by default.
type Policy struct {
	Mode     RoundingMode
	Decimals int32
}

// DefaultPolicy rounds half-up to whole currency units, once, at the
// aggregate level.
var DefaultPolicy = Policy{Mode: RoundHalfUp, Decimals: 0}

func (p Policy) round(d decimal.Decimal) decimal.Decimal {
	switch p.Mode {
	case RoundHalfEven:
		return d.RoundBank(p.Decimals)
	default:
		return d.Round(p.Decimals)
	}
}

// Line is one billable line: a quantity of some unit at a unit price.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// NewLine parses a quantity and unit price given as strings. Non-numeric
// input is rejected with ErrInvalidLineItem.
func NewLine(quantity, unitPrice string) (Line, error) {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return Line{}, ErrInvalidLineItem
	}

	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return Line{}, ErrInvalidLineItem
	}

	line := Line{Quantity: qty, UnitPrice: price}
	if _, err := line.Total(); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Total returns quantity × unit price, unrounded.
func (l Line) Total() (decimal.Decimal, error) {
	return ComputeLineTotal(l.Quantity, l.UnitPrice)
}

// Totals is the result of aggregating a set of lines under a VAT rate.
type Totals struct {
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeLineTotal returns quantity × unitPrice. Both inputs must be
// non-negative.
func ComputeLineTotal(quantity, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() || unitPrice.IsNegative() {
		return decimal.Zero, ErrInvalidLineItem
	}

	return quantity.Mul(unitPrice), nil
}

// ComputeTotals aggregates the given lines under the VAT rate (a percentage,
// e.g. 25 for 25%). The VAT amount is rounded exactly once, at the aggregate
// level, never per line, so rounding error cannot compound across lines.
func ComputeTotals(lines []Line, vatRate decimal.Decimal, policy Policy) (Totals, error) {
	if vatRate.IsNegative() {
		return Totals{}, ErrInvalidVATRate
	}

	subtotal := decimal.Zero

	for _, line := range lines {
		total, err := line.Total()
		if err != nil {
			return Totals{}, err
		}

		subtotal = subtotal.Add(total)
	}

	vatAmount := policy.round(subtotal.Mul(vatRate).Div(decimal.NewFromInt(100)))

	return Totals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		Total:     subtotal.Add(vatAmount),
	}, nil
}

// VATOf returns the rounded VAT amount for a single taxable amount. Used for
// the single-line recurring invoices where the line amount is the subtotal.
func VATOf(amount, vatRate decimal.Decimal, policy Policy) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidLineItem
	}

	if vatRate.IsNegative() {
		return decimal.Zero, ErrInvalidVATRate
	}

	return policy.round(amount.Mul(vatRate).Div(decimal.NewFromInt(100))), nil
}
