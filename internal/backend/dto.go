package backend

import "github.com/amitprasad2007/AppFashion-sub000/internal/domain"

// cartResponse is the server cart shape (subset for reconciliation)
type cartResponse struct {
	Items []domain.CartLine `json:"items"`
}

type addLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// codOrderRequest is the deferred-payment checkout body. The backend reads
// line items from the server-side cart; the payload is sent for totals,
// address and audit.
type codOrderRequest struct {
	domain.OrderSubmissionPayload
}

type intentRequest struct {
	AmountMinorUnits int64           `json:"amount"`
	Currency         string          `json:"currency"`
	Receipt          string          `json:"receipt"`
	Customer         domain.Customer `json:"customer"`
}

type verifyRequest struct {
	PaymentID      string                        `json:"payment_id"`
	GatewayOrderID string                        `json:"gateway_order_id"`
	Signature      string                        `json:"signature"`
	Order          domain.OrderSubmissionPayload `json:"order"`
}

// errorResponse is the backend's error envelope
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
