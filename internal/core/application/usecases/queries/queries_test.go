package queries_test

import (
	"testing"

	"trattoria/internal/core/application/usecases/queries"
	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByNumberQuery_Valid(t *testing.T) {
	number, err := order.NewNumber("MM12345678")
	require.NoError(t, err)

	query, err := queries.NewGetOrderByNumberQuery(number)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "MM12345678", query.Number().String())
}

func TestNewGetOrderByNumberQuery_InvalidNumber(t *testing.T) {
	_, err := queries.NewGetOrderByNumberQuery(order.Number(""))
	require.Error(t, err)
}

func TestGetOrderByNumberQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByNumberQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByNumberQueryIsNotConstructed)
}

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetMenuItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuItemsQuery()
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Category())
}

func TestNewGetMenuItemsByCategoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMenuItemsByCategoryQuery("pizza")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "pizza", query.Category())
}

func TestNewGetMenuItemsByCategoryQuery_BlankCategory(t *testing.T) {
	_, err := queries.NewGetMenuItemsByCategoryQuery("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetTestimonialsQuery_Valid(t *testing.T) {
	public := queries.NewGetTestimonialsQuery(true)
	require.NoError(t, public.Validate())
	assert.True(t, public.ApprovedOnly())

	all := queries.NewGetTestimonialsQuery(false)
	require.NoError(t, all.Validate())
	assert.False(t, all.ApprovedOnly())
}

func TestNewGetAllReservationsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllReservationsQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetTimelineQuery_Valid(t *testing.T) {
	query := queries.NewGetTimelineQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetAwardsQuery_Valid(t *testing.T) {
	query := queries.NewGetAwardsQuery()
	require.NoError(t, query.Validate())
}
