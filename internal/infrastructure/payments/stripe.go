// Package payments adapts the Stripe SDK to the PaymentGateway port.
package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeGateway creates payment intents against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe SDK with the account secret key and
// returns a gateway. The SDK holds the key globally, so construct exactly one.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent registers a card payment intent and returns its ID and client
// secret. The charge itself is completed by the frontend; this service only
// passes the intent through.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return pi.ID, pi.ClientSecret, nil
}
