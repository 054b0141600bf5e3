// Package checkout creates payment sessions at the external provider
// boundary. The core only ever sees an opaque redirect URL; webhook
// handling and settlement live outside this service.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"go.uber.org/zap"
)

// Provider creates checkout sessions.
type Provider interface {
	CreateSession(ctx context.Context, payload Payload) (*Session, error)
}

type stripeProvider struct {
	logger *zap.Logger
}

// NewStripeProvider configures the Stripe client and returns the
// provider.
func NewStripeProvider(apiKey string, logger *zap.Logger) Provider {
	stripe.Key = apiKey
	if logger == nil {
		logger = zap.NewNop()
	}
	return &stripeProvider{logger: logger}
}

func (p *stripeProvider) CreateSession(ctx context.Context, payload Payload) (*Session, error) {
	if payload.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if payload.CustomerEmail == "" {
		return nil, ErrMissingEmail
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(payload.SuccessURL),
		CancelURL:         stripe.String(payload.CancelURL),
		CustomerEmail:     stripe.String(payload.CustomerEmail),
		ClientReferenceID: stripe.String(payload.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(payload.Currency)),
					UnitAmount: stripe.Int64(minorUnits(payload.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(payload.Description),
					},
				},
			},
		},
	}
	params.Context = ctx
	for k, v := range payload.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		p.logger.Error("stripe session creation failed",
			zap.Error(err),
			zap.String("reference", payload.Reference),
			zap.String("currency", payload.Currency))

		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrPaymentInit, stripeErr.Msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}

	p.logger.Info("checkout session created",
		zap.String("session_id", s.ID),
		zap.String("reference", payload.Reference))

	return &Session{ID: s.ID, RedirectURL: s.URL}, nil
}

// minorUnits converts a display amount into the provider's integer
// minor units (cents, kobo).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
