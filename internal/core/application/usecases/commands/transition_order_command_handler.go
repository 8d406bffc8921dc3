package commands

import (
	"context"
	"errors"
	"sort"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services/authgate"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrDeliveryOwnsCompletion is returned when an actor tries to mark an order
// DELIVERED directly while a delivery record exists for it. Completion then
// belongs to the delivery state machine, which propagates it back.
var ErrDeliveryOwnsCompletion = errors.New(
	"order has an active delivery; complete the delivery instead",
)

// TransitionOrderCommandHandler handles order lifecycle transitions.
// Ownership is checked first (403), then the central transition table (409),
// so an actor with no stake never learns whether the move was legal.
//
// A successful transition to SHIPPED creates the order's delivery record in
// the same transaction; a transition to CANCELLED returns the order's units
// to seller inventory.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       authgate.Gate
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, gate authgate.Gate) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the order transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.gate.AuthorizeOrderActor(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if cmd.Target() == order.StatusDelivered {
		_, err = deliveryRepo.GetByOrderID(ctx, aggregate.ID())
		switch {
		case err == nil:
			return ErrDeliveryOwnsCompletion
		case !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor().Role()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == order.StatusShipped {
		if err = h.ensureDelivery(ctx, deliveryRepo, aggregate); err != nil {
			return err
		}
	}

	if cmd.Target() == order.StatusCancelled {
		if err = h.restockItems(ctx, uow.ProductRepository(), aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// restockItems returns a cancelled order's units to inventory. Rows are
// locked in a fixed order so a concurrent checkout cannot deadlock against
// the cancellation.
func (h *TransitionOrderCommandHandler) restockItems(
	ctx context.Context,
	productRepo ports.ProductRepository,
	aggregate *order.Order,
) error {
	items := make([]order.Item, len(aggregate.Items()))
	copy(items, aggregate.Items())
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID().String() < items[j].ProductID().String()
	})

	for _, item := range items {
		locked, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = locked.Restock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, locked); err != nil {
			return err
		}
	}

	return nil
}

// ensureDelivery creates the delivery record for a freshly shipped order.
// Exactly one delivery may exist per order, retried transitions included.
func (h *TransitionOrderCommandHandler) ensureDelivery(
	ctx context.Context,
	deliveryRepo ports.DeliveryRepository,
	aggregate *order.Order,
) error {
	_, err := deliveryRepo.GetByOrderID(ctx, aggregate.ID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	created, err := delivery.NewDelivery(aggregate.ID())
	if err != nil {
		return err
	}

	return deliveryRepo.Add(ctx, created)
}
