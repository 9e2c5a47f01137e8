package domain

import "time"

// Class is a bookable fitness class. BookingCount is incremented whenever a
// payment for the class is recorded and drives the featured listing.
type Class struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Image         string    `json:"image" bson:"image"`
	Details       string    `json:"details" bson:"details"`
	TrainerEmails []string  `json:"trainer_emails" bson:"trainer_emails"`
	BookingCount  int64     `json:"booking_count" bson:"booking_count"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
