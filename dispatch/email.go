package dispatch

import (
	"bytes"
	"fmt"
	"html/template"

	companyDomain "github.com/nordbill/backoffice/company/domain"
	customerDomain "github.com/nordbill/backoffice/customer/domain"
	"github.com/nordbill/backoffice/document"
	invoiceDomain "github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/mailer"
	quoteDomain "github.com/nordbill/backoffice/quote/domain"
)

var invoiceBodyTemplate = template.Must(template.New("invoiceBody").Parse(`<p>Hei {{.CustomerName}},</p>
<p>Vedlagt finner du faktura {{.Number}} fra {{.IssuerName}}.</p>
<p>Å betale: <strong>{{.Total}} kr</strong><br>Forfallsdato: {{.DueDate}}</p>
<p>Med vennlig hilsen<br>{{.IssuerName}}</p>`))

var quoteBodyTemplate = template.Must(template.New("quoteBody").Parse(`<p>Hei {{.CustomerName}},</p>
<p>Vedlagt finner du tilbud {{.Number}} fra {{.IssuerName}}: {{.Title}}.</p>
<p>Totalt: <strong>{{.Total}} kr</strong><br>Tilbudet er gyldig til {{.ValidUntil}}.</p>
<p>Med vennlig hilsen<br>{{.IssuerName}}</p>`))

func composeInvoiceMessage(invoice *invoiceDomain.Invoice, customer *customerDomain.Customer, profile *companyDomain.Profile, pdf []byte) (*mailer.Message, error) {
	var body bytes.Buffer

	err := invoiceBodyTemplate.Execute(&body, map[string]string{
		"CustomerName": customer.Name,
		"IssuerName":   profile.Name,
		"Number":       invoice.FormattedNumber(),
		"Total":        document.FormatAmount(invoice.Total),
		"DueDate":      invoice.DueDate.Format("02.01.2006"),
	})
	if err != nil {
		return nil, err
	}

	return &mailer.Message{
		To:      customer.Email,
		ToName:  customer.Name,
		Subject: fmt.Sprintf("Faktura %s fra %s", invoice.FormattedNumber(), profile.Name),
		HTML:    body.String(),
		Attachments: []mailer.Attachment{
			{
				Filename:    invoice.DocumentName(),
				ContentType: document.ContentType,
				Data:        pdf,
			},
		},
	}, nil
}

func composeQuoteMessage(quote *quoteDomain.Quote, customer *customerDomain.Customer, profile *companyDomain.Profile, pdf []byte) (*mailer.Message, error) {
	var body bytes.Buffer

	err := quoteBodyTemplate.Execute(&body, map[string]string{
		"CustomerName": customer.Name,
		"IssuerName":   profile.Name,
		"Number":       quote.FormattedNumber(),
		"Title":        quote.Title,
		"Total":        document.FormatAmount(quote.Total),
		"ValidUntil":   quote.ValidUntil.Format("02.01.2006"),
	})
	if err != nil {
		return nil, err
	}

	return &mailer.Message{
		To:      customer.Email,
		ToName:  customer.Name,
		Subject: fmt.Sprintf("Tilbud %s fra %s", quote.FormattedNumber(), profile.Name),
		HTML:    body.String(),
		Attachments: []mailer.Attachment{
			{
				Filename:    quote.DocumentName(),
				ContentType: document.ContentType,
				Data:        pdf,
			},
		},
	}, nil
}
