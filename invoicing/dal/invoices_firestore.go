package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/invoicing/domain"
	"github.com/nordbill/backoffice/times"
)

const (
	invoicesCollection = "invoices"
	appCollection      = "app"
	invoiceCounterDoc  = "invoiceCounter"

	customerIDField  = "customerId"
	periodStartField = "periodStart"
	statusField      = "status"
	sentAtField      = "sentAt"
	sentToField      = "sentTo"
	paidAtField      = "paidAt"
	cancelledAtField = "cancelledAt"
)

type invoiceCounter struct {
	LastNumber int64 `firestore:"lastNumber"`
}

// InvoicesFirestore is used to interact with invoices stored on Firestore.
type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewInvoicesFirestore returns a new InvoicesFirestore instance with given project id.
func NewInvoicesFirestore(ctx context.Context, projectID string) (*InvoicesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewInvoicesFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewInvoicesFirestoreWithClient returns a new InvoicesFirestore using given client.
func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *InvoicesFirestore) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	snap, err := d.firestoreClientFun(ctx).Collection(invoicesCollection).Doc(invoiceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrInvoiceNotFound
		}

		return nil, err
	}

	var invoice domain.Invoice
	if err := snap.DataTo(&invoice); err != nil {
		return nil, err
	}

	invoice.ID = snap.Ref.ID

	return &invoice, nil
}

func (d *InvoicesFirestore) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	iter := d.firestoreClientFun(ctx).Collection(invoicesCollection).Documents(ctx)
	defer iter.Stop()

	var invoices []*domain.Invoice

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var invoice domain.Invoice
		if err := snap.DataTo(&invoice); err != nil {
			return nil, err
		}

		invoice.ID = snap.Ref.ID
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (d *InvoicesFirestore) CreateForPeriod(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	fs := d.firestoreClientFun(ctx)

	monthStart := times.MonthStartUTC(invoice.PeriodStart)
	nextMonth := monthStart.AddDate(0, 1, 0)

	docRef := fs.Collection(invoicesCollection).NewDoc()
	counterRef := fs.Collection(appCollection).Doc(invoiceCounterDoc)

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// the billing-period uniqueness has no backing constraint, so it is
		// re-checked against the live invoice set right before the insert
		query := fs.Collection(invoicesCollection).
			Where(customerIDField, "==", invoice.CustomerID).
			Where(periodStartField, ">=", monthStart).
			Where(periodStartField, "<", nextMonth).
			Limit(1)

		existing, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			return ErrDuplicateBillingPeriod
		}

		var counter invoiceCounter

		counterSnap, err := tx.Get(counterRef)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
		} else if err := counterSnap.DataTo(&counter); err != nil {
			return err
		}

		invoice.Number = counter.LastNumber + 1

		if err := tx.Set(counterRef, invoiceCounter{LastNumber: invoice.Number}); err != nil {
			return err
		}

		return tx.Create(docRef, invoice)
	})
	if err != nil {
		return nil, err
	}

	invoice.ID = docRef.ID

	return invoice, nil
}

func (d *InvoicesFirestore) UpdateStatus(ctx context.Context, invoiceID string, update StatusUpdate) (*domain.Invoice, error) {
	ref := d.firestoreClientFun(ctx).Collection(invoicesCollection).Doc(invoiceID)

	updates := []firestore.Update{
		{Path: statusField, Value: update.Status},
	}

	if update.SentAt != nil {
		updates = append(updates, firestore.Update{Path: sentAtField, Value: update.SentAt})
	}

	if update.SentTo != "" {
		updates = append(updates, firestore.Update{Path: sentToField, Value: update.SentTo})
	}

	if update.PaidAt != nil {
		updates = append(updates, firestore.Update{Path: paidAtField, Value: update.PaidAt})
	}

	if update.CancelledAt != nil {
		updates = append(updates, firestore.Update{Path: cancelledAtField, Value: update.CancelledAt})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrInvoiceNotFound
		}

		return nil, err
	}

	return d.GetInvoice(ctx, invoiceID)
}
