package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// PaymentGateway abstracts the external payment processor. The gateway is an
// opaque collaborator; only intent creation passes through this service.
type PaymentGateway interface {
	// CreateIntent registers a payment intent for amountCents and returns the
	// intent ID and the client secret the frontend completes the charge with.
	CreateIntent(ctx context.Context, amountCents int64, currency string) (intentID, clientSecret string, err error)
}

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
}

// CreateIntentInput carries the parameters for a new payment intent.
type CreateIntentInput struct {
	AmountCents int64
	Currency    string
}

// RecordPaymentInput carries a completed charge to persist.
type RecordPaymentInput struct {
	Email       string
	ClassID     string
	AmountCents int64
	Currency    string
	IntentID    string
}

// IntentResult is returned after creating a payment intent.
type IntentResult struct {
	IntentID     string
	ClientSecret string
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*IntentResult, error)
	// RecordPayment persists the payment and increments the booked class's
	// booking count.
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
	// ListPayments returns the caller's own history; admins see all records.
	ListPayments(ctx context.Context, email, role string) ([]*domain.Payment, error)
}
