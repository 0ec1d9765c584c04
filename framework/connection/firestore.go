package connection

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/nordbill/backoffice/common"
	"github.com/nordbill/backoffice/logger"
)

// FirestoreClient wraps the firestore client used by the app.
type FirestoreClient struct {
	fs *firestore.Client
}

// NewFirestore initializes a firestore client for the configured project.
func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	return &FirestoreClient{fs: fs}, nil
}
