package order_test

import (
	"testing"

	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses every lifecycle state", func(t *testing.T) {
		for _, s := range []string{"pending", "preparing", "out_for_delivery", "delivered"} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		for _, s := range []string{"", "Pending", "cancelled", "in flight"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err, s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("allows single forward steps", func(t *testing.T) {
		steps := []struct {
			from, to order.Status
		}{
			{order.Pending, order.Preparing},
			{order.Preparing, order.OutForDelivery},
			{order.OutForDelivery, order.Delivered},
		}
		for _, step := range steps {
			got, err := step.from.Transition(step.to)
			require.NoError(t, err)
			assert.Equal(t, step.to, got)
		}
	})

	t.Run("rejects skipping a step", func(t *testing.T) {
		_, err := order.Pending.Transition(order.Delivered)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects moving backwards", func(t *testing.T) {
		_, err := order.OutForDelivery.Transition(order.Preparing)
		require.Error(t, err)
	})

	t.Run("rejects repeating the current state", func(t *testing.T) {
		_, err := order.Preparing.Transition(order.Preparing)
		require.Error(t, err)
	})

	t.Run("rejects leaving the terminal state", func(t *testing.T) {
		_, err := order.Delivered.Transition(order.Pending)
		require.Error(t, err)
		assert.True(t, order.Delivered.IsTerminal())
	})

	t.Run("rejects invalid target", func(t *testing.T) {
		_, err := order.Pending.Transition(order.Status("lost"))
		require.Error(t, err)
	})
}
