package gateway

import "context"

// CheckoutRequest is everything the hosted checkout needs to open: the
// amount-bound gateway order, the public key, and the UI prefill.
type CheckoutRequest struct {
	AmountMinorUnits int64
	Currency         string
	GatewayOrderID   string
	PublicKey        string
	Prefill          Prefill
	Theme            Theme
}

// Prefill is the contact block shown pre-populated in the checkout.
type Prefill struct {
	Name  string
	Email string
	Phone string
}

type Theme struct {
	Color string
}

// Outcome is the raw shape the checkout SDK resolves with: payment fields on
// success, Dismissed when the customer closed the sheet, or a coded error.
type Outcome struct {
	PaymentID        string
	GatewayOrderID   string
	Signature        string
	Dismissed        bool
	ErrorCode        string
	ErrorDescription string
}

// Checkout is the SDK boundary: one blocking call that opens the gateway's
// checkout UI and suspends the caller until it resolves. The host UI layer
// supplies the implementation.
type Checkout interface {
	Open(ctx context.Context, req CheckoutRequest) (Outcome, error)
}
