package domain

import "time"

// Subscriber is a newsletter signup. Email is unique; a repeated signup is
// rejected, not merged.
type Subscriber struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
}
