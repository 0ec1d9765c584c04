// Package document renders finalized invoice and quote models into PDF
// bytes. Rendering is a pure function of the model: identical input yields
// identical output bytes, which audit reproducibility depends on.
package document

import "time"

// ContentType is the fixed media type of every rendered artifact.
const ContentType = "application/pdf"

// Party is one side of the document, issuer or recipient. Empty fields are
// omitted from the rendered block, never an error.
type Party struct {
	Name      string
	Address   string
	OrgNumber string
	Email     string
	Phone     string
	Website   string
}

// PaymentChannel is one way the issuer accepts payment, e.g. a bank account
// or a Vipps number.
type PaymentChannel struct {
	Label string
	Value string
}

// Meta is the document header metadata. DueDate, PeriodStart/PeriodEnd and
// ValidUntil are optional; whichever are set get a line in the header.
type Meta struct {
	Title       string
	Number      string
	Date        time.Time
	DueDate     *time.Time
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	ValidUntil  *time.Time
}

// Item is one row of the itemized table.
type Item struct {
	Description string
	Details     string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	Total       float64
}

// Totals is the rendered totals block. Amounts arrive already rounded; the
// renderer only formats, never computes.
type Totals struct {
	Subtotal  float64
	VATRate   float64
	VATAmount float64
	Total     float64
}

// Model is a finalized invoice or quote ready for layout. The payment block
// is rendered only when at least one channel is present.
type Model struct {
	Meta      Meta
	Issuer    Party
	Recipient Party
	Items     []Item
	Totals    Totals
	Payment   []PaymentChannel
	Notes     string
	Terms     string
}
