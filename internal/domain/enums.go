package domain

// PaymentMethod is the customer's chosen payment method. Only the COD/gateway
// split drives branching; the backend resolves method-specific behavior.
type PaymentMethod string

const (
	// COD - payment collected by the courier at delivery
	PaymentMethodCOD PaymentMethod = "cod"
	// Gateway-routed methods, captured immediately through the hosted checkout
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD,
		PaymentMethodUPI,
		PaymentMethodCard,
		PaymentMethodNetBanking,
		PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// IsGateway reports whether the method routes through the payment gateway.
func (m PaymentMethod) IsGateway() bool {
	return m.IsValid() && m != PaymentMethodCOD
}

// SubmissionState represents where a single order submission attempt is in
// its lifecycle.
type SubmissionState string

const (
	// IDLE - no submission in flight
	StateIdle SubmissionState = "IDLE"
	// VALIDATING - payload is being built and validated locally
	StateValidating SubmissionState = "VALIDATING"
	// SUBMITTING_COD - deferred-payment order creation call in flight
	StateSubmittingCOD SubmissionState = "SUBMITTING_COD"
	// CREATING_INTENT - backend is minting a gateway intent
	StateCreatingIntent SubmissionState = "CREATING_INTENT"
	// AWAITING_PAYMENT - gateway checkout is open, waiting on the customer
	StateAwaitingPayment SubmissionState = "AWAITING_PAYMENT"
	// VERIFYING_PAYMENT - success payload is being verified by the backend
	StateVerifyingPayment SubmissionState = "VERIFYING_PAYMENT"
	// CONFIRMED - order persisted server-side
	StateConfirmed SubmissionState = "CONFIRMED"
	// FAILED - terminal failure, typed error surfaced to the caller
	StateFailed SubmissionState = "FAILED"
)

// IsTerminal reports whether no further transition occurs without a fresh
// user-initiated attempt.
func (s SubmissionState) IsTerminal() bool {
	return s == StateConfirmed || s == StateFailed
}

// CanTransitionTo checks if a state transition is valid
func (s SubmissionState) CanTransitionTo(next SubmissionState) bool {
	switch s {
	case StateIdle:
		return next == StateValidating
	case StateValidating:
		return next == StateSubmittingCOD ||
			next == StateCreatingIntent ||
			next == StateFailed
	case StateSubmittingCOD:
		return next == StateConfirmed ||
			next == StateFailed
	case StateCreatingIntent:
		return next == StateAwaitingPayment ||
			next == StateFailed
	case StateAwaitingPayment:
		return next == StateVerifyingPayment ||
			next == StateFailed
	case StateVerifyingPayment:
		return next == StateConfirmed ||
			next == StateFailed
	case StateConfirmed, StateFailed:
		return false // Terminal states
	default:
		return false
	}
}
