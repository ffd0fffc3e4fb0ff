package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

// ErrMalformedPayload means the submission is missing required fields or
// carries a value of the wrong shape.
type ErrMalformedPayload struct {
	Field  string
	Reason string
}

func (e ErrMalformedPayload) Error() string { return e.Reason }

// ErrDeliveryProvider means the email provider refused or failed the send.
type ErrDeliveryProvider struct {
	Provider string
	Err      error
}

func (e ErrDeliveryProvider) Error() string { return e.Err.Error() }
func (e ErrDeliveryProvider) Unwrap() error { return e.Err }

// ErrTimeout means the provider did not answer within the delivery timeout.
type ErrTimeout struct {
	Provider string
	After    time.Duration
}

func (e ErrTimeout) Error() string {
	return fmt.Sprintf("%s did not respond within %s", e.Provider, e.After)
}
func (e ErrTimeout) Unwrap() error { return context.DeadlineExceeded }

// ErrInFlight means an earlier request with the same idempotency key is still
// sending. Retrying later either delivers or collapses into a duplicate.
type ErrInFlight struct {
	Provider string
}

func (e ErrInFlight) Error() string {
	return "a submission with this idempotency key is still being sent, retry shortly"
}

// KindOf maps a Deliver error onto its wire kind.
func KindOf(err error) contactapi.Kind {
	var malformed ErrMalformedPayload
	var timeout ErrTimeout
	switch {
	case errors.As(err, &malformed):
		return contactapi.KindMalformedPayload
	case errors.As(err, &timeout):
		return contactapi.KindTimeout
	default:
		return contactapi.KindDeliveryProvider
	}
}
