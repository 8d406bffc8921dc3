package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
)

// ErrPaymentAlreadyRecorded is returned when an authorization already exists
// for the order. Providers redeliver webhooks; recording is idempotent-by-rejection.
var ErrPaymentAlreadyRecorded = errors.New("payment confirmation already recorded for order")

// ConfirmPaymentCommandHandler records external payment authorizations.
// It only writes the confirmation row; the sweep job owns the PENDING ->
// CONFIRMED order transition.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment recording.
func NewConfirmPaymentCommandHandler(uowFactory PaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	// The order must exist; a confirmation for an unknown order is a 404,
	// not a row waiting for an order that may never arrive.
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	_, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return ErrPaymentAlreadyRecorded
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	confirmation, err := payment.NewConfirmation(cmd.OrderID(), cmd.Reference())
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, confirmation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
