package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ErrNoConfirmationFound is returned when no payment confirmation awaits
// processing. The sweep job treats it as an idle tick, not a failure.
var ErrNoConfirmationFound = errors.New("no payment confirmation to apply")

// ApplyPaymentConfirmationsCommandHandler consumes recorded payment
// confirmations one at a time. For each confirmation it moves the order from
// PENDING to CONFIRMED as the system actor, then marks the confirmation
// applied, all in one transaction.
//
// Orders that left PENDING before their confirmation was processed (say, the
// buyer cancelled first) get their confirmation consumed without a transition.
type ApplyPaymentConfirmationsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewApplyPaymentConfirmationsCommandHandler creates a handler for the payment sweep.
func NewApplyPaymentConfirmationsCommandHandler(uowFactory PaymentUoWFactory) ApplyPaymentConfirmationsCommandHandler {
	return ApplyPaymentConfirmationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one pending payment confirmation.
func (h *ApplyPaymentConfirmationsCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentConfirmationsCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	orderRepo := uow.OrderRepository()

	confirmation, err := paymentRepo.GetFirstUnapplied(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrConfirmationNotFound) {
			return ErrNoConfirmationFound
		}
		return err
	}

	aggregate, err := orderRepo.Get(ctx, confirmation.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.StatusPending {
		if err = aggregate.TransitionTo(order.StatusConfirmed, auth.RoleSystem); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = confirmation.MarkApplied(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, confirmation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
