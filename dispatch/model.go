package dispatch

import (
	companyDomain "github.com/nordbill/backoffice/company/domain"
	customerDomain "github.com/nordbill/backoffice/customer/domain"
	"github.com/nordbill/backoffice/document"
	invoiceDomain "github.com/nordbill/backoffice/invoicing/domain"
	quoteDomain "github.com/nordbill/backoffice/quote/domain"
)

func invoiceDocumentModel(invoice *invoiceDomain.Invoice, customer *customerDomain.Customer, profile *companyDomain.Profile) document.Model {
	return document.Model{
		Meta: document.Meta{
			Title:       "Faktura",
			Number:      invoice.FormattedNumber(),
			Date:        invoice.InvoiceDate,
			DueDate:     &invoice.DueDate,
			PeriodStart: &invoice.PeriodStart,
			PeriodEnd:   &invoice.PeriodEnd,
		},
		Issuer:    issuerParty(profile),
		Recipient: recipientParty(customer),
		Items: []document.Item{
			{
				Description: invoice.Description,
				Quantity:    1,
				UnitPrice:   invoice.Amount,
				Total:       invoice.Amount,
			},
		},
		Totals: document.Totals{
			Subtotal:  invoice.Amount,
			VATRate:   invoice.VATRate,
			VATAmount: invoice.VATAmount,
			Total:     invoice.Total,
		},
		Payment: paymentChannels(profile.Payment),
	}
}

func quoteDocumentModel(quote *quoteDomain.Quote, items []*quoteDomain.QuoteItem, customer *customerDomain.Customer, profile *companyDomain.Profile) document.Model {
	docItems := make([]document.Item, 0, len(items))
	for _, item := range items {
		docItems = append(docItems, document.Item{
			Description: item.Description,
			Details:     item.Details,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return document.Model{
		Meta: document.Meta{
			Title:      "Tilbud",
			Number:     quote.FormattedNumber(),
			Date:       quote.ValidFrom,
			ValidUntil: &quote.ValidUntil,
		},
		Issuer:    issuerParty(profile),
		Recipient: recipientParty(customer),
		Items:     docItems,
		Totals: document.Totals{
			Subtotal:  quote.Subtotal,
			VATRate:   quote.VATRate,
			VATAmount: quote.VATAmount,
			Total:     quote.Total,
		},
		Payment: paymentChannels(profile.Payment),
		Notes:   quote.Notes,
		Terms:   quote.Terms,
	}
}

func issuerParty(profile *companyDomain.Profile) document.Party {
	return document.Party{
		Name:      profile.Name,
		Address:   profile.Address,
		OrgNumber: profile.OrgNumber,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Website:   profile.Website,
	}
}

func recipientParty(customer *customerDomain.Customer) document.Party {
	return document.Party{
		Name:      customer.Name,
		Address:   customer.Address,
		OrgNumber: customer.OrgNumber,
		Email:     customer.Email,
	}
}

func paymentChannels(payment companyDomain.PaymentChannels) []document.PaymentChannel {
	var channels []document.PaymentChannel

	if payment.BankAccount != "" {
		channels = append(channels, document.PaymentChannel{Label: "Bankkonto", Value: payment.BankAccount})
	}

	if payment.IBAN != "" {
		channels = append(channels, document.PaymentChannel{Label: "IBAN", Value: payment.IBAN})
	}

	if payment.BIC != "" {
		channels = append(channels, document.PaymentChannel{Label: "BIC", Value: payment.BIC})
	}

	if payment.VippsNumber != "" {
		channels = append(channels, document.PaymentChannel{Label: "Vipps", Value: payment.VippsNumber})
	}

	return channels
}
