package domain

// CartLine is a read-only snapshot of one cart item, taken at submission time.
type CartLine struct {
	LineID       string  `json:"line_id"`
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	ImageURL     *string `json:"image_url,omitempty"`
	VariantColor *string `json:"variant_color,omitempty"`
	Slug         *string `json:"slug,omitempty"`
}

// Address is a delivery address selected for the order. Owned by the address
// book; this subsystem only carries the selected one through the flow.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Customer carries the contact fields prefilled into the gateway checkout.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderTotals are computed once and frozen before submission.
// Invariant: GrandTotal == Subtotal - Discount + ShippingCost + Tax.
type OrderTotals struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	ShippingCost float64 `json:"shipping_cost"`
	Tax          float64 `json:"tax"`
	GrandTotal   float64 `json:"grand_total"`
	ItemCount    int     `json:"item_count"`
}

// OrderSubmissionPayload is the only payload sent to either checkout endpoint.
// Immutable once built.
type OrderSubmissionPayload struct {
	Lines         []CartLine    `json:"items"`
	AddressID     string        `json:"address_id"`
	Totals        OrderTotals   `json:"totals"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CouponCode    *string       `json:"coupon_code,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
}

// GatewayIntent is the server-minted, amount-bound authorization object the
// client presents to the payment gateway to open its checkout.
type GatewayIntent struct {
	GatewayOrderID   string `json:"gateway_order_id"`
	AmountMinorUnits int64  `json:"amount"`
	Currency         string `json:"currency"`
	PublicKey        string `json:"key_id"`
}

// GatewayStatus tags the outcome of a gateway checkout invocation.
type GatewayStatus string

const (
	GatewayStatusSuccess   GatewayStatus = "SUCCESS"
	GatewayStatusCancelled GatewayStatus = "CANCELLED"
	GatewayStatusFailed    GatewayStatus = "FAILED"
)

// GatewaySuccess holds the proof-of-payment fields the gateway hands back.
type GatewaySuccess struct {
	PaymentID      string `json:"payment_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Signature      string `json:"signature"`
}

// GatewayFailure is a coded failure reported by the gateway itself.
type GatewayFailure struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// GatewayResult is the closed union of gateway checkout outcomes. Exactly one
// of Success/Failure is set, matching Status; callers switch on Status.
type GatewayResult struct {
	Status  GatewayStatus
	Success *GatewaySuccess
	Failure *GatewayFailure
}

// NewGatewaySuccess builds a success result.
func NewGatewaySuccess(paymentID, gatewayOrderID, signature string) GatewayResult {
	return GatewayResult{
		Status: GatewayStatusSuccess,
		Success: &GatewaySuccess{
			PaymentID:      paymentID,
			GatewayOrderID: gatewayOrderID,
			Signature:      signature,
		},
	}
}

// NewGatewayCancelled builds a user-dismissed result.
func NewGatewayCancelled() GatewayResult {
	return GatewayResult{Status: GatewayStatusCancelled}
}

// NewGatewayFailure builds a coded failure result.
func NewGatewayFailure(code, reason string) GatewayResult {
	return GatewayResult{
		Status:  GatewayStatusFailed,
		Failure: &GatewayFailure{Code: code, Reason: reason},
	}
}

// OrderRecord is the server-authoritative record of a persisted order. The
// client never invents an order id.
type OrderRecord struct {
	OrderID       string  `json:"order_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	GrandTotal    float64 `json:"grand_total"`
}
