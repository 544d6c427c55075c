package kernel_test

import (
	"testing"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should create money from valid amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("44.04")

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, "44.04", m.String())
	})

	t.Run("should normalize to two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12")

		require.NoError(t, err)
		assert.Equal(t, "12.00", m.String())
	})

	t.Run("should reject empty amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-numeric amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-0.01")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject sub-cent precision", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("1.005")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromDecimal(t *testing.T) {
	t.Run("should create money from decimal", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDecimal(decimal.RequireFromString("15.00"))

		require.NoError(t, err)
		assert.Equal(t, "15.00", m.String())
	})

	t.Run("should reject negative decimal", func(t *testing.T) {
		_, err := kernel.NewMoneyFromDecimal(decimal.RequireFromString("-5"))

		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add without rounding drift", func(t *testing.T) {
		subtotal, _ := kernel.NewMoneyFromString("44.04")
		fee, _ := kernel.NewMoneyFromString("15.00")

		total, err := subtotal.Add(fee)

		require.NoError(t, err)
		assert.Equal(t, "59.04", total.String())
	})

	t.Run("should reject unconstructed operand", func(t *testing.T) {
		var zero kernel.Money
		fee, _ := kernel.NewMoneyFromString("15.00")

		_, err := fee.Add(zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("59.04")
		b, _ := kernel.NewMoneyFromString("59.040")
		c, _ := kernel.NewMoneyFromString("59.05")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
