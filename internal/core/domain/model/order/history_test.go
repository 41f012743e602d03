package order_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryEntry_WithActor(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()

	entry, err := order.NewHistoryEntry(id, orderID, order.PendingPayment, "awaiting payment", &actor)

	require.NoError(t, err)
	require.NoError(t, entry.Validate())
	assert.True(t, entry.ID().IsEqual(id))
	assert.True(t, entry.OrderID().IsEqual(orderID))
	assert.Equal(t, order.PendingPayment, entry.Status())
	assert.Equal(t, "awaiting payment", entry.Notes())
	require.NotNil(t, entry.UpdatedBy())
	assert.True(t, entry.UpdatedBy().IsEqual(actor))
	assert.False(t, entry.CreatedAt().IsZero())
}

func TestNewHistoryEntry_SystemActor(t *testing.T) {
	entry, err := order.NewHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), order.Cancelled, "", nil)

	require.NoError(t, err)
	assert.Nil(t, entry.UpdatedBy())
	assert.Empty(t, entry.Notes())
}

func TestNewHistoryEntry_InvalidInput(t *testing.T) {
	t.Run("invalid_order_id", func(t *testing.T) {
		_, err := order.NewHistoryEntry(kernel.NewUUID(), kernel.UUID{}, order.Pending, "", nil)
		require.Error(t, err)
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := order.NewHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, "", nil)
		require.Error(t, err)
	})

	t.Run("invalid_actor", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), order.Pending, "", &zero)
		require.Error(t, err)
	})
}

func TestRestoreHistoryEntry_KeepsTimestamp(t *testing.T) {
	createdAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	entry, err := order.RestoreHistoryEntry(
		kernel.NewUUID(), kernel.NewUUID(), order.Shipped, "left warehouse", nil, createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, entry.CreatedAt())
}

func TestHistoryEntry_Validate_NotConstructed(t *testing.T) {
	var entry order.HistoryEntry
	require.ErrorIs(t, entry.Validate(), order.ErrHistoryEntryIsNotConstructed)
}
