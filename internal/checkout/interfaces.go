package checkout

import (
	"context"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

// StoreAPI is the store backend surface the checkout flow drives. Implemented
// by backend.Client; handed in at construction so the orchestrator is
// testable with a fake and owns no session state.
type StoreAPI interface {
	FetchCart(ctx context.Context) ([]domain.CartLine, error)
	AddCartLine(ctx context.Context, productID string, quantity int) error
	ClearCart(ctx context.Context) error
	CreateCODOrder(ctx context.Context, payload domain.OrderSubmissionPayload, idempotencyKey string) (*domain.OrderRecord, error)
	CreateGatewayIntent(ctx context.Context, totals domain.OrderTotals, customer domain.Customer, receipt string) (*domain.GatewayIntent, error)
	VerifyPayment(ctx context.Context, success domain.GatewaySuccess, payload domain.OrderSubmissionPayload, idempotencyKey string) (*domain.OrderRecord, error)
}

// PaymentGateway opens the hosted checkout for an intent and blocks until it
// resolves. Implemented by gateway.Adapter.
type PaymentGateway interface {
	Invoke(ctx context.Context, intent domain.GatewayIntent, customer domain.Customer) domain.GatewayResult
}
