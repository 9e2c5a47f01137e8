package domain

import "time"

// ApplicationStatus represents the lifecycle state of a trainer application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// Approved and rejected are terminal.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationApproved, ApplicationRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TrainerApplication is a member's request to become a trainer. Approval
// promotes the applicant's user record to the trainer role.
type TrainerApplication struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	Email         string            `json:"email" bson:"email"`
	Name          string            `json:"name" bson:"name"`
	Age           int               `json:"age" bson:"age"`
	Skills        []string          `json:"skills" bson:"skills"`
	AvailableDays []string          `json:"available_days" bson:"available_days"`
	AvailableTime string            `json:"available_time" bson:"available_time"`
	Experience    string            `json:"experience,omitempty" bson:"experience,omitempty"`
	Status        ApplicationStatus `json:"status" bson:"status"`
	Feedback      string            `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}
