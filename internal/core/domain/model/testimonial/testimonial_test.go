package testimonial_test

import (
	"testing"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/testimonial"
	"trattoria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestimonial(t *testing.T) {
	t.Run("creates unapproved testimonial", func(t *testing.T) {
		tm, err := testimonial.NewTestimonial(kernel.NewUUID(), "Ahmed", 5, "Best margherita in town")

		require.NoError(t, err)
		assert.False(t, tm.Approved())
		assert.Equal(t, 5, tm.Rating())
	})

	t.Run("rejects rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -5} {
			_, err := testimonial.NewTestimonial(kernel.NewUUID(), "Ahmed", rating, "comment")
			require.Error(t, err, rating)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("rejects blank comment", func(t *testing.T) {
		_, err := testimonial.NewTestimonial(kernel.NewUUID(), "Ahmed", 4, "   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTestimonial_SetApproval(t *testing.T) {
	tm, err := testimonial.NewTestimonial(kernel.NewUUID(), "Ahmed", 4, "Lovely service")
	require.NoError(t, err)

	tm.SetApproval(true)
	assert.True(t, tm.Approved())

	tm.SetApproval(false)
	assert.False(t, tm.Approved())
}
