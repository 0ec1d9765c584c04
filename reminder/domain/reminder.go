package domain

import "time"

// Reminder is an external follow-up record. Reminder CRUD lives outside
// this service; only read-time escalation classification happens here.
type Reminder struct {
	ID        string    `firestore:"-" json:"id"`
	Date      time.Time `firestore:"date" json:"date"`
	Time      string    `firestore:"time" json:"time"`
	Type      string    `firestore:"type" json:"type"`
	Note      string    `firestore:"note" json:"note"`
	Completed bool      `firestore:"completed" json:"completed"`
}
