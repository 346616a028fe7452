package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
	apperrors "github.com/amitprasad2007/AppFashion-sub000/pkg/errors"
)

// SubmitRequest is one user-initiated submission attempt: the cart snapshot,
// the chosen address and payment method, and the frozen totals.
type SubmitRequest struct {
	Lines      []domain.CartLine
	Address    *domain.Address
	Totals     domain.OrderTotals
	Method     domain.PaymentMethod
	Customer   domain.Customer
	CouponCode *string
	Notes      *string
}

// Service orchestrates the end-to-end submission flow for both payment
// branches and owns the submission state machine. At most one submission may
// be in flight at a time.
type Service struct {
	api        StoreAPI
	gateway    PaymentGateway
	reconciler *Reconciler
	verifier   *Verifier
	logger     *zap.Logger

	inFlight sync.Mutex
	stateMu  sync.RWMutex
	state    domain.SubmissionState
}

// NewService creates an order submission service. The backend client and
// gateway are injected; session/auth state stays with the caller.
func NewService(api StoreAPI, gw PaymentGateway, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:        api,
		gateway:    gw,
		reconciler: NewReconciler(api, logger),
		verifier:   NewVerifier(api, logger),
		logger:     logger,
		state:      domain.StateIdle,
	}
}

// State returns the current submission state.
func (s *Service) State() domain.SubmissionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *Service) transition(next domain.SubmissionState) error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if !s.state.CanTransitionTo(next) {
		return &apperrors.ErrInvalidStateTransition{From: s.state, To: next}
	}
	s.logger.Debug("Submission state transition",
		zap.String("from", string(s.state)),
		zap.String("to", string(next)))
	s.state = next
	return nil
}

func (s *Service) fail(err error) error {
	s.stateMu.Lock()
	s.state = domain.StateFailed
	s.stateMu.Unlock()
	return err
}

// Submit runs one submission attempt to a terminal state. The returned error
// is always one of the typed errors in pkg/errors; ErrPaymentUnverified must
// be surfaced distinctly since money has been captured.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.OrderRecord, error) {
	if !s.inFlight.TryLock() {
		return nil, &apperrors.ErrConflict{Message: "a submission is already in flight"}
	}
	defer s.inFlight.Unlock()

	// Fresh attempt, fresh machine.
	s.stateMu.Lock()
	s.state = domain.StateIdle
	s.stateMu.Unlock()

	if err := s.transition(domain.StateValidating); err != nil {
		return nil, err
	}

	payload, err := BuildPayload(req.Lines, req.Address, req.Totals, req.Method, req.CouponCode, req.Notes)
	if err != nil {
		s.logger.Info("Submission rejected by local validation", zap.Error(err))
		return nil, s.fail(err)
	}

	// One idempotency key per attempt, shared by whichever order-creating
	// call this branch makes.
	attemptKey := uuid.NewString()

	if req.Method.IsGateway() {
		return s.submitGateway(ctx, *payload, req.Customer, attemptKey)
	}
	return s.submitCOD(ctx, *payload, attemptKey)
}

func (s *Service) submitCOD(ctx context.Context, payload domain.OrderSubmissionPayload, attemptKey string) (*domain.OrderRecord, error) {
	if err := s.transition(domain.StateSubmittingCOD); err != nil {
		return nil, err
	}

	// Best-effort: the COD endpoint reads the order from the server-side
	// cart, so push any lines it is missing first. Partial reconciliation is
	// logged, never fatal.
	if result, err := s.reconciler.Reconcile(ctx, payload.Lines); err != nil {
		s.logger.Warn("Cart reconciliation failed, submitting anyway", zap.Error(err))
	} else if result.PartiallyFailed() {
		failed := make([]string, len(result.Failed))
		for i, f := range result.Failed {
			failed[i] = f.ProductID
		}
		s.logger.Warn("Cart reconciliation incomplete, submitting anyway",
			zap.Strings("failed_product_ids", failed))
	}

	record, err := s.api.CreateCODOrder(ctx, payload, attemptKey)
	if err != nil {
		s.logger.Error("COD order creation failed", zap.Error(err))
		return nil, s.fail(err)
	}

	if err := s.transition(domain.StateConfirmed); err != nil {
		return nil, err
	}
	s.logger.Info("Order confirmed",
		zap.String("order_id", record.OrderID),
		zap.Float64("grand_total", record.GrandTotal))

	s.clearCartBestEffort(ctx)
	return record, nil
}

func (s *Service) submitGateway(ctx context.Context, payload domain.OrderSubmissionPayload, customer domain.Customer, attemptKey string) (*domain.OrderRecord, error) {
	if err := s.transition(domain.StateCreatingIntent); err != nil {
		return nil, err
	}

	receipt := uuid.NewString()
	intent, err := s.api.CreateGatewayIntent(ctx, payload.Totals, customer, receipt)
	if err != nil {
		// No money has moved; a fresh attempt mints a fresh intent.
		s.logger.Error("Gateway intent creation failed", zap.Error(err))
		return nil, s.fail(&apperrors.ErrGateway{Code: "INTENT_CREATE_FAILED", Reason: err.Error()})
	}

	if err := s.transition(domain.StateAwaitingPayment); err != nil {
		return nil, err
	}

	result := s.gateway.Invoke(ctx, *intent, customer)
	switch result.Status {
	case domain.GatewayStatusCancelled:
		s.logger.Info("Submission cancelled by user",
			zap.String("gateway_order_id", intent.GatewayOrderID))
		return nil, s.fail(&apperrors.ErrUserCancelled{})

	case domain.GatewayStatusFailed:
		return nil, s.fail(&apperrors.ErrGateway{
			Code:   result.Failure.Code,
			Reason: result.Failure.Reason,
		})

	case domain.GatewayStatusSuccess:
		if err := s.transition(domain.StateVerifyingPayment); err != nil {
			return nil, err
		}

		// Money has been captured; verification must run to completion even
		// if the caller's context is cancelled mid-flight.
		verifyCtx := context.WithoutCancel(ctx)
		record, err := s.verifier.Verify(verifyCtx, *result.Success, payload, attemptKey)
		if err != nil {
			return nil, s.fail(err)
		}

		if err := s.transition(domain.StateConfirmed); err != nil {
			return nil, err
		}
		s.clearCartBestEffort(verifyCtx)
		return record, nil

	default:
		return nil, s.fail(&apperrors.ErrGateway{
			Code:   "UNKNOWN_STATUS",
			Reason: "gateway returned unrecognized status " + string(result.Status),
		})
	}
}

// clearCartBestEffort empties the server cart after a confirmed order. The
// order already exists server-side; a stale cart is cosmetic, so failure here
// never demotes the confirmed state.
func (s *Service) clearCartBestEffort(ctx context.Context) {
	if err := s.api.ClearCart(ctx); err != nil {
		s.logger.Warn("Failed to clear cart after confirmed order", zap.Error(err))
	}
}
