package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/quote/domain"
)

const (
	quotesCollection = "quotes"
	itemsCollection  = "items"
	appCollection    = "app"
	quoteCounterDoc  = "quoteCounter"

	sortOrderField   = "sortOrder"
	statusField      = "status"
	sentAtField      = "sentAt"
	sentToEmailField = "sentToEmail"
	acceptedAtField  = "acceptedAt"
	declinedAtField  = "declinedAt"
	subtotalField    = "subtotal"
	vatAmountField   = "vatAmount"
	totalField       = "total"
)

type quoteCounter struct {
	LastNumber int64 `firestore:"lastNumber"`
}

// QuotesFirestore is used to interact with quotes stored on Firestore.
// Items live in a subcollection under each quote document.
type QuotesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewQuotesFirestore returns a new QuotesFirestore instance with given project id.
func NewQuotesFirestore(ctx context.Context, projectID string) (*QuotesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewQuotesFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewQuotesFirestoreWithClient returns a new QuotesFirestore using given client.
func NewQuotesFirestoreWithClient(fun connection.FirestoreFromContextFun) *QuotesFirestore {
	return &QuotesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *QuotesFirestore) quoteRef(ctx context.Context, quoteID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(quotesCollection).Doc(quoteID)
}

func (d *QuotesFirestore) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	snap, err := d.quoteRef(ctx, quoteID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrQuoteNotFound
		}

		return nil, err
	}

	var quote domain.Quote
	if err := snap.DataTo(&quote); err != nil {
		return nil, err
	}

	quote.ID = snap.Ref.ID

	return &quote, nil
}

func (d *QuotesFirestore) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	iter := d.firestoreClientFun(ctx).Collection(quotesCollection).Documents(ctx)
	defer iter.Stop()

	var quotes []*domain.Quote

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var quote domain.Quote
		if err := snap.DataTo(&quote); err != nil {
			return nil, err
		}

		quote.ID = snap.Ref.ID
		quotes = append(quotes, &quote)
	}

	return quotes, nil
}

func (d *QuotesFirestore) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	fs := d.firestoreClientFun(ctx)

	docRef := fs.Collection(quotesCollection).NewDoc()
	counterRef := fs.Collection(appCollection).Doc(quoteCounterDoc)

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var counter quoteCounter

		counterSnap, err := tx.Get(counterRef)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
		} else if err := counterSnap.DataTo(&counter); err != nil {
			return err
		}

		quote.Number = counter.LastNumber + 1

		if err := tx.Set(counterRef, quoteCounter{LastNumber: quote.Number}); err != nil {
			return err
		}

		return tx.Create(docRef, quote)
	})
	if err != nil {
		return nil, err
	}

	quote.ID = docRef.ID

	return quote, nil
}

func (d *QuotesFirestore) DeleteQuote(ctx context.Context, quoteID string) error {
	fs := d.firestoreClientFun(ctx)
	quoteRef := d.quoteRef(ctx, quoteID)

	return fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(quoteRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrQuoteNotFound
			}

			return err
		}

		items, err := tx.Documents(quoteRef.Collection(itemsCollection)).GetAll()
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.Delete(item.Ref); err != nil {
				return err
			}
		}

		return tx.Delete(quoteRef)
	})
}

func (d *QuotesFirestore) GetItems(ctx context.Context, quoteID string) ([]*domain.QuoteItem, error) {
	iter := d.quoteRef(ctx, quoteID).
		Collection(itemsCollection).
		OrderBy(sortOrderField, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var items []*domain.QuoteItem

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var item domain.QuoteItem
		if err := snap.DataTo(&item); err != nil {
			return nil, err
		}

		item.ID = snap.Ref.ID
		items = append(items, &item)
	}

	return items, nil
}

func (d *QuotesFirestore) ReplaceItems(ctx context.Context, quoteID string, items []*domain.QuoteItem, totals TotalsUpdate) error {
	fs := d.firestoreClientFun(ctx)
	quoteRef := d.quoteRef(ctx, quoteID)

	return fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(quoteRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrQuoteNotFound
			}

			return err
		}

		existing, err := tx.Documents(quoteRef.Collection(itemsCollection)).GetAll()
		if err != nil {
			return err
		}

		for _, item := range existing {
			if err := tx.Delete(item.Ref); err != nil {
				return err
			}
		}

		for _, item := range items {
			if err := tx.Create(quoteRef.Collection(itemsCollection).NewDoc(), item); err != nil {
				return err
			}
		}

		return tx.Update(quoteRef, []firestore.Update{
			{Path: subtotalField, Value: totals.Subtotal},
			{Path: vatAmountField, Value: totals.VATAmount},
			{Path: totalField, Value: totals.Total},
		})
	})
}

func (d *QuotesFirestore) UpdateStatus(ctx context.Context, quoteID string, update StatusUpdate) (*domain.Quote, error) {
	ref := d.quoteRef(ctx, quoteID)

	updates := []firestore.Update{
		{Path: statusField, Value: update.Status},
	}

	if update.SentAt != nil {
		updates = append(updates, firestore.Update{Path: sentAtField, Value: update.SentAt})
	}

	if update.SentToEmail != "" {
		updates = append(updates, firestore.Update{Path: sentToEmailField, Value: update.SentToEmail})
	}

	if update.AcceptedAt != nil {
		updates = append(updates, firestore.Update{Path: acceptedAtField, Value: update.AcceptedAt})
	}

	if update.DeclinedAt != nil {
		updates = append(updates, firestore.Update{Path: declinedAtField, Value: update.DeclinedAt})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrQuoteNotFound
		}

		return nil, err
	}

	return d.GetQuote(ctx, quoteID)
}
