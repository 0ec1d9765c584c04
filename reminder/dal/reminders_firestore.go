package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/reminder/domain"
)

const (
	remindersCollection = "reminders"

	completedField = "completed"
	dateField      = "date"
)

// RemindersFirestore reads reminders stored on Firestore. This service never
// writes them.
type RemindersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewRemindersFirestore returns a new RemindersFirestore instance with given project id.
func NewRemindersFirestore(ctx context.Context, projectID string) (*RemindersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewRemindersFirestoreWithClient(
		func(_ context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewRemindersFirestoreWithClient returns a new RemindersFirestore using given client.
func NewRemindersFirestoreWithClient(fun connection.FirestoreFromContextFun) *RemindersFirestore {
	return &RemindersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *RemindersFirestore) GetOpenReminders(ctx context.Context) ([]*domain.Reminder, error) {
	iter := d.firestoreClientFun(ctx).Collection(remindersCollection).
		Where(completedField, "==", false).
		OrderBy(dateField, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var reminders []*domain.Reminder

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var reminder domain.Reminder
		if err := snap.DataTo(&reminder); err != nil {
			return nil, err
		}

		reminder.ID = snap.Ref.ID
		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}
