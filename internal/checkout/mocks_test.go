package checkout

import (
	"context"
	"sync"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

// fakeStore implements StoreAPI for testing. Each op has an overridable
// func; unset ops succeed with zero-value results. Calls are recorded.
type fakeStore struct {
	mu sync.Mutex

	fetchCartFn     func(ctx context.Context) ([]domain.CartLine, error)
	addCartLineFn   func(ctx context.Context, productID string, quantity int) error
	clearCartFn     func(ctx context.Context) error
	createCODFn     func(ctx context.Context, payload domain.OrderSubmissionPayload, key string) (*domain.OrderRecord, error)
	createIntentFn  func(ctx context.Context, totals domain.OrderTotals, customer domain.Customer, receipt string) (*domain.GatewayIntent, error)
	verifyPaymentFn func(ctx context.Context, success domain.GatewaySuccess, payload domain.OrderSubmissionPayload, key string) (*domain.OrderRecord, error)

	addedLines    []string
	clearCalls    int
	codCalls      int
	intentCalls   int
	verifyCalls   int
	lastCODKey    string
	lastVerifyKey string
}

func (f *fakeStore) FetchCart(ctx context.Context) ([]domain.CartLine, error) {
	if f.fetchCartFn != nil {
		return f.fetchCartFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) AddCartLine(ctx context.Context, productID string, quantity int) error {
	f.mu.Lock()
	f.addedLines = append(f.addedLines, productID)
	f.mu.Unlock()
	if f.addCartLineFn != nil {
		return f.addCartLineFn(ctx, productID, quantity)
	}
	return nil
}

func (f *fakeStore) ClearCart(ctx context.Context) error {
	f.mu.Lock()
	f.clearCalls++
	f.mu.Unlock()
	if f.clearCartFn != nil {
		return f.clearCartFn(ctx)
	}
	return nil
}

func (f *fakeStore) CreateCODOrder(ctx context.Context, payload domain.OrderSubmissionPayload, key string) (*domain.OrderRecord, error) {
	f.mu.Lock()
	f.codCalls++
	f.lastCODKey = key
	f.mu.Unlock()
	if f.createCODFn != nil {
		return f.createCODFn(ctx, payload, key)
	}
	return &domain.OrderRecord{
		OrderID:       "ord-1",
		Status:        "PENDING",
		PaymentStatus: "Payment pending",
		GrandTotal:    payload.Totals.GrandTotal,
	}, nil
}

func (f *fakeStore) CreateGatewayIntent(ctx context.Context, totals domain.OrderTotals, customer domain.Customer, receipt string) (*domain.GatewayIntent, error) {
	f.mu.Lock()
	f.intentCalls++
	f.mu.Unlock()
	if f.createIntentFn != nil {
		return f.createIntentFn(ctx, totals, customer, receipt)
	}
	return &domain.GatewayIntent{
		GatewayOrderID:   "gw_order_1",
		AmountMinorUnits: domain.ToMinorUnits(totals.GrandTotal),
		Currency:         "INR",
		PublicKey:        "rzp_test_key",
	}, nil
}

func (f *fakeStore) VerifyPayment(ctx context.Context, success domain.GatewaySuccess, payload domain.OrderSubmissionPayload, key string) (*domain.OrderRecord, error) {
	f.mu.Lock()
	f.verifyCalls++
	f.lastVerifyKey = key
	f.mu.Unlock()
	if f.verifyPaymentFn != nil {
		return f.verifyPaymentFn(ctx, success, payload, key)
	}
	return &domain.OrderRecord{
		OrderID:       "ord-2",
		Status:        "PENDING",
		PaymentStatus: "Paid",
		GrandTotal:    payload.Totals.GrandTotal,
	}, nil
}

// fakeGateway implements PaymentGateway, returning a preset result and
// recording the intent it was invoked with.
type fakeGateway struct {
	result domain.GatewayResult

	invocations int
	lastIntent  domain.GatewayIntent
}

func (f *fakeGateway) Invoke(ctx context.Context, intent domain.GatewayIntent, customer domain.Customer) domain.GatewayResult {
	f.invocations++
	f.lastIntent = intent
	return f.result
}
