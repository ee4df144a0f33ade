package storage

import (
	"context"
	"fmt"
	"testing"

	"cardstore/client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(orderNo string, status domain.OrderStatus) domain.LocalOrderRecord {
	return domain.LocalOrderRecord{
		OrderNo:    orderNo,
		Email:      "buyer@example.com",
		TotalPrice: "10.00",
		Status:     status,
		CreatedAt:  "2026-01-09T12:00:00Z",
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())

	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPending)))
	require.NoError(t, history.Add(ctx, record("B", domain.OrderStatusPending)))

	records := history.List(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].OrderNo)
	assert.Equal(t, "A", records[1].OrderNo)
}

func TestHistoryCapsAtFifty(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())

	for i := 1; i <= 51; i++ {
		require.NoError(t, history.Add(ctx, record(fmt.Sprintf("ORD-%02d", i), domain.OrderStatusPending)))
	}

	records := history.List(ctx)
	require.Len(t, records, 50)
	assert.Equal(t, "ORD-51", records[0].OrderNo, "the 51st insertion sits at the front")
	assert.Equal(t, "ORD-02", records[49].OrderNo, "the oldest record fell off")
}

func TestHistoryAddExistingOrderKeepsPosition(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())
	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPending)))
	require.NoError(t, history.Add(ctx, record("B", domain.OrderStatusPending)))
	require.NoError(t, history.Add(ctx, record("C", domain.OrderStatusPending)))

	// Re-adding A with a new status replaces it in place; it is not promoted.
	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPaid)))

	records := history.List(ctx)
	require.Len(t, records, 3)
	assert.Equal(t, "C", records[0].OrderNo)
	assert.Equal(t, "A", records[2].OrderNo)
	assert.Equal(t, domain.OrderStatusPaid, records[2].Status)
}

func TestHistoryUpdateInPlace(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())
	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPending)))
	require.NoError(t, history.Add(ctx, record("B", domain.OrderStatusPending)))

	require.NoError(t, history.Update(ctx, "A", func(r *domain.LocalOrderRecord) {
		r.Status = domain.OrderStatusCompleted
	}))

	records := history.List(ctx)
	assert.Equal(t, "B", records[0].OrderNo, "update does not reorder")
	assert.Equal(t, domain.OrderStatusCompleted, records[1].Status)
}

func TestHistoryUpdateMissingOrderIsNoop(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())
	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPending)))

	require.NoError(t, history.Update(ctx, "missing", func(r *domain.LocalOrderRecord) {
		r.Status = domain.OrderStatusCancelled
	}))

	records := history.List(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, domain.OrderStatusPending, records[0].Status)
}

func TestHistoryClear(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(NewMemoryStore())
	require.NoError(t, history.Add(ctx, record("A", domain.OrderStatusPending)))

	require.NoError(t, history.Clear(ctx))
	assert.Empty(t, history.List(ctx))
}
