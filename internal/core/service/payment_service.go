package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const defaultCurrency = "usd"

// PaymentService implements the payment-intent passthrough and payment records.
type PaymentService struct {
	gateway ports.PaymentGateway
	repo    ports.PaymentRepository
	classes ports.ClassRepository
	logger  zerolog.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, repo ports.PaymentRepository, classes ports.ClassRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, repo: repo, classes: classes, logger: logger}
}

// CreateIntent asks the gateway for a payment intent. No state is persisted
// until the charge is recorded.
func (s *PaymentService) CreateIntent(ctx context.Context, in ports.CreateIntentInput) (*ports.IntentResult, error) {
	if in.AmountCents <= 0 {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	intentID, clientSecret, err := s.gateway.CreateIntent(ctx, in.AmountCents, currency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount_cents", in.AmountCents).Msg("payment intent creation failed")
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &ports.IntentResult{IntentID: intentID, ClientSecret: clientSecret}, nil
}

// RecordPayment persists a completed charge and bumps the booked class's
// booking count. The booking bump is non-fatal: a payment record must never
// be lost because a counter update failed.
func (s *PaymentService) RecordPayment(ctx context.Context, in ports.RecordPaymentInput) (*domain.Payment, error) {
	if in.Email == "" || in.ClassID == "" || in.AmountCents <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.classes.FindByID(ctx, in.ClassID); err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	payment, err := s.repo.Create(ctx, &domain.Payment{
		Email:      in.Email,
		ClassID:    in.ClassID,
		PriceCents: in.AmountCents,
		Currency:   currency,
		IntentID:   in.IntentID,
		Status:     domain.PaymentSucceeded,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.classes.IncrementBookingCount(ctx, in.ClassID); err != nil {
		s.logger.Warn().Err(err).Str("class_id", in.ClassID).Msg("failed to bump booking count")
	}

	s.logger.Info().Str("payment_id", payment.ID).Str("class_id", in.ClassID).Msg("payment recorded")
	return payment, nil
}

// ListPayments returns the caller's own history; admins see every record.
func (s *PaymentService) ListPayments(ctx context.Context, email, role string) ([]*domain.Payment, error) {
	if role == domain.RoleAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListByEmail(ctx, email)
}
