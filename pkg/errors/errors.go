package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

// ErrValidation is returned when the submission payload fails local validation.
// No network call has been made; the input can be corrected and resubmitted.
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msg := range e.Fields {
			parts = append(parts, field+": "+msg)
		}
		sort.Strings(parts)
		return "validation failed: " + strings.Join(parts, "; ")
	}
	return "validation failed"
}

// ErrSubmission is returned when deferred-payment order creation is rejected
// or unreachable. No money has moved; safe to retry.
type ErrSubmission struct {
	StatusCode int
	Message    string
}

func (e *ErrSubmission) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("order submission failed (status %d): %s", e.StatusCode, e.Message)
	}
	return "order submission failed: " + e.Message
}

// ErrGateway is returned when the payment gateway itself reports a failure.
// No money captured; safe to retry with a fresh intent.
type ErrGateway struct {
	Code   string
	Reason string
}

func (e *ErrGateway) Error() string {
	return fmt.Sprintf("payment gateway error [%s]: %s", e.Code, e.Reason)
}

// ErrUserCancelled is returned when the customer dismissed the gateway
// checkout. Terminal; no retry is offered automatically.
type ErrUserCancelled struct{}

func (e *ErrUserCancelled) Error() string {
	return "payment cancelled by user"
}

// ErrPaymentUnverified is the severe case: the gateway captured the payment
// but the backend did not confirm order persistence. Callers must surface this
// distinctly and offer an order-status check, never a blind payment retry.
type ErrPaymentUnverified struct {
	PaymentID      string
	GatewayOrderID string
	IdempotencyKey string
	Cause          error
}

func (e *ErrPaymentUnverified) Error() string {
	return fmt.Sprintf("payment %s captured but verification failed for gateway order %s: %v",
		e.PaymentID, e.GatewayOrderID, e.Cause)
}

func (e *ErrPaymentUnverified) Unwrap() error {
	return e.Cause
}

// ErrConflict is returned when there's a conflict (e.g., a submission already in flight)
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "conflict"
}

// ErrInvalidStateTransition is returned when an invalid submission state transition is attempted
type ErrInvalidStateTransition struct {
	From domain.SubmissionState
	To   domain.SubmissionState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
