package authgate

import (
	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
)

// Gate is a domain service answering one question: may this actor act on
// this aggregate at all. It checks ownership only; whether the requested
// state change is legal for the actor's role is the state machine's job.
//
// Ownership rules:
//   - admin and system actors may act on anything
//   - a buyer may act only on their own orders
//   - a seller may act on an order only when at least one of its items
//     belongs to that seller
//   - a driver may act only on the delivery assigned to them
//
// Failures come back as *auth.ForbiddenError, which is deliberately
// distinct from the state machines' *IllegalTransitionError: a 403 means
// "not yours", a 409 means "not now".
type Gate struct{}

// NewGate creates a new Gate instance.
func NewGate() Gate {
	return Gate{}
}

// AuthorizeOrderActor checks whether the actor owns a stake in the order.
// Drivers have no direct claim on orders; they act through their delivery.
func (g Gate) AuthorizeOrderActor(actor auth.Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case auth.RoleAdmin, auth.RoleSystem:
		return nil
	case auth.RoleBuyer:
		if o.BuyerID().IsEqual(actor.ID()) {
			return nil
		}
	case auth.RoleSeller:
		if o.HasSellerItems(actor.ID()) {
			return nil
		}
	}

	return auth.NewForbiddenError(actor.Role(), "act on this order")
}

// AuthorizeDeliveryActor checks whether the actor owns a stake in the
// delivery. Only the assigned driver qualifies below admin/system.
func (g Gate) AuthorizeDeliveryActor(actor auth.Actor, d *delivery.Delivery) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case auth.RoleAdmin, auth.RoleSystem:
		return nil
	case auth.RoleDriver:
		if d.IsAssignedTo(actor.ID()) {
			return nil
		}
	}

	return auth.NewForbiddenError(actor.Role(), "act on this delivery")
}
