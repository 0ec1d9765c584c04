package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageMargin   = 15.0
	bottomZone   = 30.0
	pageHeight   = 297.0
	contentWidth = 180.0

	colDescription = 80.0
	colQuantity    = 20.0
	colUnit        = 20.0
	colUnitPrice   = 30.0
	colTotal       = 30.0
)

// creationDate is pinned so rendering the same model twice yields identical
// bytes. The document date shown to the reader comes from the model.
var creationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Render lays out the model as a single PDF artifact. Missing optional
// fields drop their section; they never fail the render.
func Render(model Model) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(creationDate)
	pdf.SetModificationDate(creationDate)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, bottomZone-5)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr(strings.TrimSpace(model.Meta.Title+" "+model.Meta.Number)), false)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, tr(footerLine(model.Issuer)), "", 0, "L", false, 0, "")
		pdf.SetY(-15)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Side %d av {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	renderHeader(pdf, tr, model)
	renderRecipient(pdf, tr, model.Recipient)
	renderItems(pdf, tr, model.Items)
	renderTotals(pdf, tr, model.Totals)
	renderParagraph(pdf, tr, "Notater", model.Notes)
	renderParagraph(pdf, tr, "Betingelser", model.Terms)
	renderPayment(pdf, tr, model.Payment)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, model Model) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(110, 8, tr(model.Issuer.Name), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 8, tr(strings.ToUpper(model.Meta.Title)), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)

	for _, line := range partyLines(model.Issuer) {
		pdf.CellFormat(110, 4.5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	metaLine(pdf, tr, "Nummer", model.Meta.Number)
	metaLine(pdf, tr, "Dato", formatDate(model.Meta.Date))

	if model.Meta.DueDate != nil {
		metaLine(pdf, tr, "Forfallsdato", formatDate(*model.Meta.DueDate))
	}

	if model.Meta.PeriodStart != nil && model.Meta.PeriodEnd != nil {
		metaLine(pdf, tr, "Periode", formatDate(*model.Meta.PeriodStart)+" - "+formatDate(*model.Meta.PeriodEnd))
	}

	if model.Meta.ValidUntil != nil {
		metaLine(pdf, tr, "Gyldig til", formatDate(*model.Meta.ValidUntil))
	}

	pdf.Ln(4)
}

func metaLine(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 5.5, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5.5, tr(value), "", 1, "L", false, 0, "")
}

func renderRecipient(pdf *fpdf.Fpdf, tr func(string) string, recipient Party) {
	lines := partyLines(recipient)
	if recipient.Name == "" && len(lines) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, tr("Fakturamottaker"), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr(recipient.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)

	for _, line := range lines {
		pdf.CellFormat(0, 4.5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
}

func renderItems(pdf *fpdf.Fpdf, tr func(string) string, items []Item) {
	if len(items) == 0 {
		return
	}

	drawTableHeader(pdf, tr)

	for _, item := range items {
		rowHeight := 6.0
		if item.Details != "" {
			rowHeight += 4.5
		}

		// rows break page-wise so a line never straddles two pages
		if pdf.GetY()+rowHeight > pageHeight-bottomZone {
			pdf.AddPage()
			drawTableHeader(pdf, tr)
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(colDescription, 6, tr(item.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(colQuantity, 6, formatQuantity(item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colUnit, 6, tr(item.Unit), "", 0, "L", false, 0, "")
		pdf.CellFormat(colUnitPrice, 6, FormatAmount(item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, FormatAmount(item.Total), "", 1, "R", false, 0, "")

		if item.Details != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(110, 110, 110)
			pdf.CellFormat(colDescription, 4.5, tr(item.Details), "", 1, "L", false, 0, "")
		}
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pageMargin, pdf.GetY()+1, pageMargin+contentWidth, pdf.GetY()+1)
	pdf.Ln(4)
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colDescription, 7, tr("Beskrivelse"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colQuantity, 7, tr("Antall"), "", 0, "R", true, 0, "")
	pdf.CellFormat(colUnit, 7, tr("Enhet"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colUnitPrice, 7, tr("Pris"), "", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, tr("Beløp"), "", 1, "R", true, 0, "")
	pdf.Ln(1)
}

func renderTotals(pdf *fpdf.Fpdf, tr func(string) string, totals Totals) {
	labelWidth := contentWidth - colTotal

	totalLine := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}

		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelWidth, 6, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, value, "", 1, "R", false, 0, "")
	}

	totalLine("Sum eks. mva.", FormatAmount(totals.Subtotal), false)
	totalLine(fmt.Sprintf("Mva. %s %%", formatQuantity(totals.VATRate)), FormatAmount(totals.VATAmount), false)
	totalLine("Å betale", FormatAmount(totals.Total), true)

	pdf.Ln(6)
}

func renderParagraph(pdf *fpdf.Fpdf, tr func(string) string, label, text string) {
	if text == "" {
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, tr(label), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(contentWidth, 4.5, tr(text), "", "L", false)
	pdf.Ln(4)
}

func renderPayment(pdf *fpdf.Fpdf, tr func(string) string, channels []PaymentChannel) {
	if len(channels) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, tr("Betalingsinformasjon"), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	for _, channel := range channels {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(35, 5, tr(channel.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(channel.Value), "", 1, "L", false, 0, "")
	}
}

func partyLines(party Party) []string {
	var lines []string

	for _, line := range strings.Split(party.Address, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if party.OrgNumber != "" {
		lines = append(lines, "Org.nr. "+party.OrgNumber)
	}

	if party.Email != "" {
		lines = append(lines, party.Email)
	}

	if party.Phone != "" {
		lines = append(lines, party.Phone)
	}

	if party.Website != "" {
		lines = append(lines, party.Website)
	}

	return lines
}

func footerLine(issuer Party) string {
	parts := []string{issuer.Name}

	if issuer.OrgNumber != "" {
		parts = append(parts, "Org.nr. "+issuer.OrgNumber)
	}

	if issuer.Email != "" {
		parts = append(parts, issuer.Email)
	}

	return strings.Join(parts, "  |  ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("02.01.2006")
}

// FormatAmount renders a monetary value the Norwegian way: space-grouped
// thousands and a decimal comma.
func FormatAmount(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	grouped := groupThousands(parts[0])

	out := grouped + "," + parts[1]
	if negative {
		out = "-" + out
	}

	return out
}

func formatQuantity(v float64) string {
	return strings.ReplaceAll(decimal.NewFromFloat(v).String(), ".", ",")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
