package commands

import (
	"context"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
)

// AssignDriverCommandHandler handles driver assignment for deliveries.
// Only dispatch staff (admin) assigns drivers; a driver cannot claim a
// delivery for themselves. A fresh assignment moves a PENDING delivery to
// PENDING_PICKUP in the same transaction.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory DeliveryUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return auth.NewForbiddenError(cmd.Actor().Role(), "assign a driver")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if aggregate.Status() == delivery.StatusPending {
		if err = aggregate.TransitionTo(delivery.StatusPendingPickup, auth.RoleSystem); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
