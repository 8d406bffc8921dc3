package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("payment reference is required")
)

// ConfirmPaymentCommand records that an external payment provider authorized
// payment for an order. The order itself is confirmed later, asynchronously,
// by the payment confirmation sweep.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to record a payment authorization.
func NewConfirmPaymentCommand(orderID kernel.UUID, reference string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReference(reference),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order the authorization belongs to.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the provider's authorization identifier.
func (c ConfirmPaymentCommand) Reference() string {
	return c.reference
}

func (c *ConfirmPaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmPaymentCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	c.reference = reference
	return nil
}
