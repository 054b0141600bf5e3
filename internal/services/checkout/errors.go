package checkout

import "errors"

var (
	// ErrPaymentInit wraps provider failures during session creation.
	// The provider-reported message is attached when available.
	ErrPaymentInit = errors.New("failed to initialize payment")

	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrMissingEmail  = errors.New("customer email is required")
)
