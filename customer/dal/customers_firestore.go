package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nordbill/backoffice/customer/domain"
	"github.com/nordbill/backoffice/framework/connection"
)

const (
	customersCollection  = "customers"
	agreementActiveField = "serviceAgreement.active"
)

// CustomersFirestore is used to interact with customers stored on Firestore.
type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCustomersFirestore returns a new CustomersFirestore instance with given project id.
func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomersFirestoreWithClient returns a new CustomersFirestore using given client.
func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CustomersFirestore) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	snap, err := d.firestoreClientFun(ctx).Collection(customersCollection).Doc(customerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	var customer domain.Customer
	if err := snap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = snap.Ref.ID

	return &customer, nil
}

func (d *CustomersFirestore) GetCustomersWithActiveAgreement(ctx context.Context) ([]*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(customersCollection).
		Where(agreementActiveField, "==", true).
		Documents(ctx)
	defer iter.Stop()

	var customers []*domain.Customer

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var customer domain.Customer
		if err := snap.DataTo(&customer); err != nil {
			return nil, err
		}

		customer.ID = snap.Ref.ID
		customers = append(customers, &customer)
	}

	return customers, nil
}
