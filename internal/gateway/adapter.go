package gateway

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/config"
	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

// codeTransport is used when the SDK call itself errors rather than
// resolving with a coded failure.
const codeTransport = "TRANSPORT_ERROR"

// Adapter wraps the checkout SDK and normalizes its ad hoc outcome shape
// into the closed GatewayResult union.
type Adapter struct {
	checkout Checkout
	cfg      config.GatewayConfig
	logger   *zap.Logger
}

// NewAdapter creates a payment gateway adapter
func NewAdapter(checkout Checkout, cfg config.GatewayConfig, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		checkout: checkout,
		cfg:      cfg,
		logger:   logger,
	}
}

// Invoke opens the gateway checkout with the given intent and blocks until
// the customer pays, dismisses the sheet, or the gateway fails.
func (a *Adapter) Invoke(ctx context.Context, intent domain.GatewayIntent, customer domain.Customer) domain.GatewayResult {
	publicKey := intent.PublicKey
	if publicKey == "" {
		publicKey = a.cfg.KeyID
	}

	req := CheckoutRequest{
		AmountMinorUnits: intent.AmountMinorUnits,
		Currency:         intent.Currency,
		GatewayOrderID:   intent.GatewayOrderID,
		PublicKey:        publicKey,
		Prefill: Prefill{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Theme: Theme{Color: a.cfg.ThemeColor},
	}

	a.logger.Info("Opening gateway checkout",
		zap.String("gateway_order_id", intent.GatewayOrderID),
		zap.Int64("amount_minor", intent.AmountMinorUnits),
		zap.String("currency", intent.Currency),
	)

	outcome, err := a.checkout.Open(ctx, req)
	if err != nil {
		a.logger.Warn("Gateway checkout did not resolve", zap.Error(err))
		return domain.NewGatewayFailure(codeTransport, err.Error())
	}

	switch {
	case outcome.Dismissed:
		a.logger.Info("Customer dismissed gateway checkout",
			zap.String("gateway_order_id", intent.GatewayOrderID))
		return domain.NewGatewayCancelled()

	case outcome.ErrorCode != "" || outcome.ErrorDescription != "":
		code := outcome.ErrorCode
		if code == "" {
			code = "UNKNOWN"
		}
		a.logger.Warn("Gateway reported payment failure",
			zap.String("code", code),
			zap.String("reason", outcome.ErrorDescription))
		return domain.NewGatewayFailure(code, outcome.ErrorDescription)

	case outcome.PaymentID != "":
		orderID := outcome.GatewayOrderID
		if orderID == "" {
			orderID = intent.GatewayOrderID
		}
		return domain.NewGatewaySuccess(outcome.PaymentID, orderID, strings.TrimSpace(outcome.Signature))

	default:
		// SDK resolved with none of the three shapes; treat as a failure so
		// the flow never verifies a payment it has no proof of.
		a.logger.Error("Gateway checkout resolved with empty outcome",
			zap.String("gateway_order_id", intent.GatewayOrderID))
		return domain.NewGatewayFailure("EMPTY_OUTCOME", "gateway returned no payment, dismissal, or error")
	}
}
