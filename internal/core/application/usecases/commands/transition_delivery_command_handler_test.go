package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services/authgate"
)

func driverActor(t *testing.T, driverID kernel.UUID) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(driverID, auth.RoleDriver)
	require.NoError(t, err)
	return actor
}

func deliveryInStatus(t *testing.T, orderID, driverID kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, &driverID, status, 1)
	require.NoError(t, err)
	return d
}

func TestTransitionDeliveryCommandHandler_Handle_DriverPicksUp(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testDelivery := deliveryInStatus(t, kernel.NewUUID(), driverID, delivery.StatusPendingPickup)

	cmd, err := commands.NewTransitionDeliveryCommand(
		testDelivery.ID(), delivery.StatusOutForDelivery, driverActor(t, driverID),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, authgate.NewGate())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusOutForDelivery, testDelivery.Status())
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestTransitionDeliveryCommandHandler_Handle_DeliveredPropagatesToOrder(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	parent := newOrderInStatus(t, kernel.NewUUID(), sellerID, order.StatusShipped)
	testDelivery := deliveryInStatus(t, parent.ID(), driverID, delivery.StatusOutForDelivery)

	cmd, err := commands.NewTransitionDeliveryCommand(
		testDelivery.ID(), delivery.StatusDelivered, driverActor(t, driverID),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, authgate.NewGate())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, testDelivery.Status())
	assert.Equal(t, order.StatusDelivered, parent.Status())

	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionDeliveryCommandHandler_Handle_WrongDriverForbidden(t *testing.T) {
	ctx := t.Context()
	testDelivery := deliveryInStatus(t, kernel.NewUUID(), kernel.NewUUID(), delivery.StatusPendingPickup)

	cmd, err := commands.NewTransitionDeliveryCommand(
		testDelivery.ID(), delivery.StatusOutForDelivery, driverActor(t, kernel.NewUUID()),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, authgate.NewGate())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Equal(t, delivery.StatusPendingPickup, testDelivery.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTransitionDeliveryCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testDelivery := deliveryInStatus(t, kernel.NewUUID(), driverID, delivery.StatusPending)

	cmd, err := commands.NewTransitionDeliveryCommand(
		testDelivery.ID(), delivery.StatusDelivered, driverActor(t, driverID),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, authgate.NewGate())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
