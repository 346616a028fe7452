package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
)

func TestReconcile_PushesOnlyMissingLines(t *testing.T) {
	store := &fakeStore{
		fetchCartFn: func(ctx context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{{ProductID: "p1"}}, nil
		},
	}
	r := NewReconciler(store, nil)

	local := []domain.CartLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
		{ProductID: "p3", Quantity: 1},
	}
	result, err := r.Reconcile(context.Background(), local)

	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3"}, result.Pushed)
	assert.Empty(t, result.Failed)
	assert.False(t, result.PartiallyFailed())
	assert.ElementsMatch(t, []string{"p2", "p3"}, store.addedLines)
}

func TestReconcile_NothingMissing(t *testing.T) {
	store := &fakeStore{
		fetchCartFn: func(ctx context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{{ProductID: "p1"}, {ProductID: "p2"}}, nil
		},
	}
	r := NewReconciler(store, nil)

	result, err := r.Reconcile(context.Background(), []domain.CartLine{{ProductID: "p1", Quantity: 1}})

	require.NoError(t, err)
	assert.Empty(t, result.Pushed)
	assert.Empty(t, store.addedLines)
}

// Server lines absent locally are left untouched: merge, not two-way sync.
func TestReconcile_LeavesServerOnlyLinesAlone(t *testing.T) {
	store := &fakeStore{
		fetchCartFn: func(ctx context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{{ProductID: "server-only"}}, nil
		},
	}
	r := NewReconciler(store, nil)

	result, err := r.Reconcile(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result.Pushed)
	assert.Empty(t, store.addedLines)
}

func TestReconcile_CollectsFailuresWithoutAborting(t *testing.T) {
	store := &fakeStore{
		fetchCartFn: func(ctx context.Context) ([]domain.CartLine, error) {
			return nil, nil
		},
		addCartLineFn: func(ctx context.Context, productID string, quantity int) error {
			if productID == "p2" {
				return errors.New("out of stock")
			}
			return nil
		},
	}
	r := NewReconciler(store, nil)

	local := []domain.CartLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}
	result, err := r.Reconcile(context.Background(), local)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, result.Pushed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "p2", result.Failed[0].ProductID)
	assert.True(t, result.PartiallyFailed())
	// All three pushes were attempted despite the p2 failure.
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, store.addedLines)
}

func TestReconcile_FetchFailure(t *testing.T) {
	store := &fakeStore{
		fetchCartFn: func(ctx context.Context) ([]domain.CartLine, error) {
			return nil, errors.New("cart service unavailable")
		},
	}
	r := NewReconciler(store, nil)

	result, err := r.Reconcile(context.Background(), []domain.CartLine{{ProductID: "p1", Quantity: 1}})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Empty(t, store.addedLines)
}
