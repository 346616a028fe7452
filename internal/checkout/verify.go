package checkout

import (
	"context"

	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
	apperrors "github.com/amitprasad2007/AppFashion-sub000/pkg/errors"
)

// Verifier sends the gateway's proof of payment to the backend for
// authoritative verification and order persistence.
type Verifier struct {
	api    StoreAPI
	logger *zap.Logger
}

// NewVerifier creates a payment verifier
func NewVerifier(api StoreAPI, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{api: api, logger: logger}
}

// Verify makes a single verification call; no automatic retries, because a
// retry after a transient failure risks double-submission. Any failure comes
// back as ErrPaymentUnverified: at this point money has left the customer,
// so the caller must offer an order-status check, not a payment retry.
func (v *Verifier) Verify(
	ctx context.Context,
	success domain.GatewaySuccess,
	payload domain.OrderSubmissionPayload,
	idempotencyKey string,
) (*domain.OrderRecord, error) {
	record, err := v.api.VerifyPayment(ctx, success, payload, idempotencyKey)
	if err != nil {
		v.logger.Error("Payment verification failed after capture",
			zap.String("payment_id", success.PaymentID),
			zap.String("gateway_order_id", success.GatewayOrderID),
			zap.String("idempotency_key", idempotencyKey),
			zap.Error(err))
		return nil, &apperrors.ErrPaymentUnverified{
			PaymentID:      success.PaymentID,
			GatewayOrderID: success.GatewayOrderID,
			IdempotencyKey: idempotencyKey,
			Cause:          err,
		}
	}

	v.logger.Info("Payment verified and order persisted",
		zap.String("payment_id", success.PaymentID),
		zap.String("order_id", record.OrderID))
	return record, nil
}
