package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/invoicing/dal"
	"github.com/nordbill/backoffice/invoicing/dal/mocks"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/logger"
)

func TestInvoicingService_Transition(t *testing.T) {
	ctx := context.Background()

	type fields struct {
		invoicesDAL *mocks.Invoices
	}

	type args struct {
		invoiceID string
		action    domain.Action
	}

	tests := []struct {
		name       string
		args       args
		on         func(f *fields)
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "mark pending invoice paid",
			args: args{invoiceID: "inv-1", action: domain.ActionMarkPaid},
			on: func(f *fields) {
				f.invoicesDAL.On("GetInvoice", ctx, "inv-1").
					Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusPending}, nil)
				f.invoicesDAL.On("UpdateStatus", ctx, "inv-1", mock.MatchedBy(func(u dal.StatusUpdate) bool {
					return u.Status == domain.StatusPaid && u.PaidAt != nil && u.SentAt == nil
				})).Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusPaid}, nil)
			},
			wantStatus: domain.StatusPaid,
		},
		{
			name: "cancel sent invoice",
			args: args{invoiceID: "inv-2", action: domain.ActionCancel},
			on: func(f *fields) {
				f.invoicesDAL.On("GetInvoice", ctx, "inv-2").
					Return(&domain.Invoice{ID: "inv-2", Status: domain.StatusSent}, nil)
				f.invoicesDAL.On("UpdateStatus", ctx, "inv-2", mock.MatchedBy(func(u dal.StatusUpdate) bool {
					return u.Status == domain.StatusCancelled && u.CancelledAt != nil
				})).Return(&domain.Invoice{ID: "inv-2", Status: domain.StatusCancelled}, nil)
			},
			wantStatus: domain.StatusCancelled,
		},
		{
			name: "marking a paid invoice sent is illegal",
			args: args{invoiceID: "inv-3", action: domain.ActionMarkSent},
			on: func(f *fields) {
				f.invoicesDAL.On("GetInvoice", ctx, "inv-3").
					Return(&domain.Invoice{ID: "inv-3", Status: domain.StatusPaid}, nil)
			},
			wantErr: ErrIllegalTransition,
		},
		{
			name: "missing invoice",
			args: args{invoiceID: "nope", action: domain.ActionMarkPaid},
			on: func(f *fields) {
				f.invoicesDAL.On("GetInvoice", ctx, "nope").
					Return(nil, dal.ErrInvoiceNotFound)
			},
			wantErr: dal.ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{invoicesDAL: &mocks.Invoices{}}
			if tt.on != nil {
				tt.on(&f)
			}

			s := &InvoicingService{
				loggerProvider: logger.FromContext,
				invoicesDAL:    f.invoicesDAL,
			}

			got, err := s.Transition(ctx, tt.args.invoiceID, tt.args.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.invoicesDAL.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			f.invoicesDAL.AssertExpectations(t)
		})
	}
}

func TestInvoicingService_MarkSent(t *testing.T) {
	ctx := context.Background()

	invoicesDAL := &mocks.Invoices{}
	invoicesDAL.On("GetInvoice", ctx, "inv-1").
		Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusPending}, nil)
	invoicesDAL.On("UpdateStatus", ctx, "inv-1", mock.MatchedBy(func(u dal.StatusUpdate) bool {
		return u.Status == domain.StatusSent && u.SentAt != nil && u.SentTo == "billing@fjellverk.no"
	})).Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusSent, SentTo: "billing@fjellverk.no"}, nil)

	s := &InvoicingService{
		loggerProvider: logger.FromContext,
		invoicesDAL:    invoicesDAL,
	}

	got, err := s.MarkSent(ctx, "inv-1", "billing@fjellverk.no")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusSent, got.Status)
	assert.Equal(t, "billing@fjellverk.no", got.SentTo)
	invoicesDAL.AssertExpectations(t)
}
