package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
)

func TestNewGetOrdersForSellerQuery(t *testing.T) {
	sellerID := kernel.NewUUID()

	query, err := queries.NewGetOrdersForSellerQuery(sellerID)
	require.NoError(t, err)
	assert.Equal(t, sellerID, query.SellerID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersForSellerQuery_InvalidSellerID(t *testing.T) {
	_, err := queries.NewGetOrdersForSellerQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrdersForSellerQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersForSellerQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersForSellerQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	actor, err := auth.NewActor(kernel.NewUUID(), auth.RoleBuyer)
	require.NoError(t, err)

	query, err := queries.NewGetOrderQuery(orderID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actor, query.Actor())
}

func TestNewGetOrderQuery_UnconstructedActor(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), auth.Actor{})
	require.Error(t, err)
}

func TestNewGetPendingDeliveriesQuery(t *testing.T) {
	query := queries.NewGetPendingDeliveriesQuery()
	assert.NoError(t, query.Validate())

	var unconstructed queries.GetPendingDeliveriesQuery
	assert.ErrorIs(t, unconstructed.Validate(), queries.ErrGetPendingDeliveriesQueryIsNotConstructed)
}
