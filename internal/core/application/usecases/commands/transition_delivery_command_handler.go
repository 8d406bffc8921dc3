package commands

import (
	"context"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services/authgate"
	"marketplace/internal/core/ports"
)

// TransitionDeliveryCommandHandler handles delivery fulfillment transitions.
// The delivery record is authoritative for fulfillment state; when a delivery
// reaches DELIVERED the parent order is moved to DELIVERED in the same
// transaction, so the two can never disagree across a crash.
type TransitionDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gate       authgate.Gate
}

// NewTransitionDeliveryCommandHandler creates a handler for delivery transitions.
func NewTransitionDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	gate authgate.Gate,
) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the delivery transition command.
func (h *TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.gate.AuthorizeDeliveryActor(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor().Role()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == delivery.StatusDelivered {
		if err = h.propagateOrderDelivered(ctx, orderRepo, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// propagateOrderDelivered moves the parent order to DELIVERED as the system
// actor. The delivery already owns completion; the role table lets the
// system trigger exactly this edge.
func (h *TransitionDeliveryCommandHandler) propagateOrderDelivered(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	aggregate *delivery.Delivery,
) error {
	parent, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = parent.TransitionTo(order.StatusDelivered, auth.RoleSystem); err != nil {
		return err
	}

	return orderRepo.Update(ctx, parent)
}
