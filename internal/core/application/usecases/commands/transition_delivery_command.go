package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
)

// TransitionDeliveryCommand represents a request by an actor to move a
// delivery to a new fulfillment status.
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	actor      auth.Actor

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a command to transition a delivery.
func NewTransitionDeliveryCommand(
	deliveryID kernel.UUID,
	target delivery.Status,
	actor auth.Actor,
) (TransitionDeliveryCommand, error) {
	cmd := TransitionDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to transition.
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested target status.
func (c TransitionDeliveryCommand) Target() delivery.Status {
	return c.target
}

// Actor returns who is requesting the transition.
func (c TransitionDeliveryCommand) Actor() auth.Actor {
	return c.actor
}

func (c *TransitionDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *TransitionDeliveryCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionDeliveryCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
