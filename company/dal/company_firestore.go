package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nordbill/backoffice/company/domain"
	"github.com/nordbill/backoffice/framework/connection"
)

const (
	appCollection     = "app"
	companyProfileDoc = "companyProfile"
)

var ErrProfileNotFound = errors.New("company profile not found")

// CompanyFirestore reads the issuer profile stored on Firestore.
type CompanyFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCompanyFirestore returns a new CompanyFirestore instance with given project id.
func NewCompanyFirestore(ctx context.Context, projectID string) (*CompanyFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCompanyFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCompanyFirestoreWithClient returns a new CompanyFirestore using given client.
func NewCompanyFirestoreWithClient(fun connection.FirestoreFromContextFun) *CompanyFirestore {
	return &CompanyFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CompanyFirestore) GetProfile(ctx context.Context) (*domain.Profile, error) {
	snap, err := d.firestoreClientFun(ctx).Collection(appCollection).Doc(companyProfileDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	var profile domain.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
