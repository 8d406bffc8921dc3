package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor, err := auth.NewActor(kernel.NewUUID(), auth.RoleSeller)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.StatusProcessing, actor)
	require.NoError(t, err)

	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.StatusProcessing, cmd.Target())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	actor, err := auth.NewActor(kernel.NewUUID(), auth.RoleSeller)
	require.NoError(t, err)

	_, err = commands.NewTransitionOrderCommand(kernel.UUID{}, order.StatusProcessing, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderCommand_InvalidTarget(t *testing.T) {
	actor, err := auth.NewActor(kernel.NewUUID(), auth.RoleSeller)
	require.NoError(t, err)

	_, err = commands.NewTransitionOrderCommand(kernel.NewUUID(), order.StatusUnknown, actor)
	require.Error(t, err)
}

func TestNewTransitionOrderCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.StatusProcessing, auth.Actor{})
	require.Error(t, err)
}
