package domain

import "time"

// Payment statuses persisted with a payment record.
const (
	PaymentSucceeded = "succeeded"
	PaymentPending   = "pending"
)

// Payment records a completed (or pending) class purchase. IntentID is the
// gateway's payment-intent identifier; the gateway itself is an opaque
// external collaborator.
type Payment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Email      string    `json:"email" bson:"email"`
	ClassID    string    `json:"class_id" bson:"class_id"`
	PriceCents int64     `json:"price_cents" bson:"price_cents"`
	Currency   string    `json:"currency" bson:"currency"`
	IntentID   string    `json:"intent_id" bson:"intent_id"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
