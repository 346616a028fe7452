package checkout

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

// LineFailure records one cart line that could not be pushed to the server.
type LineFailure struct {
	ProductID string
	Err       error
}

// ReconcileResult reports which local lines were pushed into the server cart
// and which pushes failed. The caller decides whether partial reconciliation
// is acceptable before creating the order.
type ReconcileResult struct {
	Pushed []string
	Failed []LineFailure
}

// PartiallyFailed reports whether any line push failed.
func (r *ReconcileResult) PartiallyFailed() bool {
	return len(r.Failed) > 0
}

// Reconciler merges locally displayed cart lines into the authoritative
// server cart before a deferred-payment submission, which reads the order
// from the server-side cart rather than from the payload's line list.
type Reconciler struct {
	api    StoreAPI
	logger *zap.Logger
}

// NewReconciler creates a cart reconciler
func NewReconciler(api StoreAPI, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{api: api, logger: logger}
}

// Reconcile pushes every local line absent from the server cart (matched by
// product id). Best-effort merge, not a two-way sync: server lines absent
// locally are left untouched, and each push is independent so one failure
// never aborts the others.
func (r *Reconciler) Reconcile(ctx context.Context, localLines []domain.CartLine) (*ReconcileResult, error) {
	serverLines, err := r.api.FetchCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	onServer := make(map[string]bool, len(serverLines))
	for _, line := range serverLines {
		onServer[line.ProductID] = true
	}

	var missing []domain.CartLine
	for _, line := range localLines {
		if line.ProductID != "" && !onServer[line.ProductID] {
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return &ReconcileResult{}, nil
	}

	r.logger.Info("Pushing missing cart lines to server", zap.Int("line_count", len(missing)))

	// Pushes are independent; issue them concurrently.
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result ReconcileResult
	)
	for _, line := range missing {
		line := line
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.api.AddCartLine(ctx, line.ProductID, line.Quantity); err != nil {
				r.logger.Warn("Failed to push cart line to server",
					zap.String("product_id", line.ProductID),
					zap.Error(err))
				mu.Lock()
				result.Failed = append(result.Failed, LineFailure{ProductID: line.ProductID, Err: err})
				mu.Unlock()
				return
			}
			mu.Lock()
			result.Pushed = append(result.Pushed, line.ProductID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Strings(result.Pushed)
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].ProductID < result.Failed[j].ProductID
	})

	return &result, nil
}
