package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customerMocks "github.com/nordbill/backoffice/customer/dal/mocks"
	customerDomain "github.com/nordbill/backoffice/customer/domain"
	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/dal/mocks"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/money"
)

func TestInvoicingService_GenerateInvoicesForPeriod(t *testing.T) {
	ctx := context.Background()
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	activeCustomer := func(id string, price float64) *customerDomain.Customer {
		return &customerDomain.Customer{
			ID:    id,
			Name:  id,
			Email: id + "@example.no",
			Agreement: &customerDomain.ServiceAgreement{
				Type:         "drift",
				MonthlyPrice: price,
				Active:       true,
			},
		}
	}

	type fields struct {
		invoicesDAL  *mocks.Invoices
		customersDAL *customerMocks.Customers
	}

	tests := []struct {
		name        string
		on          func(f *fields)
		wantCreated int
		wantErr     bool
	}{
		{
			name: "creates invoice with VAT for unbilled customer",
			on: func(f *fields) {
				f.invoicesDAL.On("ListInvoices", ctx).Return(nil, nil)
				f.customersDAL.On("GetCustomersWithActiveAgreement", ctx).
					Return([]*customerDomain.Customer{activeCustomer("acme", 5000)}, nil)
				f.invoicesDAL.On("CreateForPeriod", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
					return inv.CustomerID == "acme" &&
						inv.Amount == 5000 &&
						inv.VATAmount == 1250 &&
						inv.Total == 6250 &&
						inv.Status == domain.StatusPending &&
						inv.PeriodStart.Equal(july)
				})).Return(&domain.Invoice{ID: "new", CustomerID: "acme", Number: 1}, nil)
			},
			wantCreated: 1,
		},
		{
			name: "skips customer already billed for the month",
			on: func(f *fields) {
				f.invoicesDAL.On("ListInvoices", ctx).Return([]*domain.Invoice{
					{ID: "old", CustomerID: "acme", PeriodStart: july},
				}, nil)
				f.customersDAL.On("GetCustomersWithActiveAgreement", ctx).
					Return([]*customerDomain.Customer{activeCustomer("acme", 5000)}, nil)
			},
			wantCreated: 0,
		},
		{
			name: "skips customer without a priced agreement",
			on: func(f *fields) {
				unpriced := activeCustomer("gratis", 0)
				f.invoicesDAL.On("ListInvoices", ctx).Return(nil, nil)
				f.customersDAL.On("GetCustomersWithActiveAgreement", ctx).
					Return([]*customerDomain.Customer{unpriced}, nil)
			},
			wantCreated: 0,
		},
		{
			name: "duplicate billing period collision is a no-op",
			on: func(f *fields) {
				f.invoicesDAL.On("ListInvoices", ctx).Return(nil, nil)
				f.customersDAL.On("GetCustomersWithActiveAgreement", ctx).
					Return([]*customerDomain.Customer{activeCustomer("acme", 5000)}, nil)
				f.invoicesDAL.On("CreateForPeriod", ctx, mock.Anything).
					Return(nil, dal.ErrDuplicateBillingPeriod)
			},
			wantCreated: 0,
		},
		{
			name: "insert failure for one customer does not block the rest",
			on: func(f *fields) {
				f.invoicesDAL.On("ListInvoices", ctx).Return(nil, nil)
				f.customersDAL.On("GetCustomersWithActiveAgreement", ctx).
					Return([]*customerDomain.Customer{
						activeCustomer("broken", 795),
						activeCustomer("acme", 5000),
					}, nil)
				f.invoicesDAL.On("CreateForPeriod", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
					return inv.CustomerID == "broken"
				})).Return(nil, assert.AnError)
				f.invoicesDAL.On("CreateForPeriod", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
					return inv.CustomerID == "acme"
				})).Return(&domain.Invoice{ID: "new", CustomerID: "acme"}, nil)
			},
			wantCreated: 1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				invoicesDAL:  &mocks.Invoices{},
				customersDAL: &customerMocks.Customers{},
			}
			if tt.on != nil {
				tt.on(&f)
			}

			s := &InvoicingService{
				loggerProvider: logger.FromContext,
				invoicesDAL:    f.invoicesDAL,
				customersDAL:   f.customersDAL,
				monthParser:    &DefaultInvoiceMonthParser{InvoicingDaySwitchOver: 10},
				vatRate:        decimal.NewFromInt(25),
				policy:         money.DefaultPolicy,
				dueInDays:      14,
			}

			created, err := s.GenerateInvoicesForPeriod(ctx, "2026-07")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Len(t, created, tt.wantCreated)
			f.invoicesDAL.AssertExpectations(t)
			f.customersDAL.AssertExpectations(t)
		})
	}
}

func TestInvoicingService_GenerateInvoicesForPeriod_WholeKroneVAT(t *testing.T) {
	ctx := context.Background()

	invoicesDAL := &mocks.Invoices{}
	customersDAL := &customerMocks.Customers{}

	invoicesDAL.On("ListInvoices", ctx).Return(nil, nil)
	customersDAL.On("GetCustomersWithActiveAgreement", ctx).
		Return([]*customerDomain.Customer{{
			ID: "smaa", Name: "smaa",
			Agreement: &customerDomain.ServiceAgreement{Type: "support", MonthlyPrice: 795, Active: true},
		}}, nil)
	invoicesDAL.On("CreateForPeriod", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
		// 795 * 25% = 198.75, rounds half up to 199
		return inv.VATAmount == 199 && inv.Total == 994
	})).Return(&domain.Invoice{ID: "new"}, nil)

	s := &InvoicingService{
		loggerProvider: logger.FromContext,
		invoicesDAL:    invoicesDAL,
		customersDAL:   customersDAL,
		monthParser:    &DefaultInvoiceMonthParser{InvoicingDaySwitchOver: 10},
		vatRate:        decimal.NewFromInt(25),
		policy:         money.DefaultPolicy,
		dueInDays:      14,
	}

	created, err := s.GenerateInvoicesForPeriod(ctx, "2026-07")

	assert.NoError(t, err)
	assert.Len(t, created, 1)
	invoicesDAL.AssertExpectations(t)
}
