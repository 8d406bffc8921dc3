package payment

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrConfirmationIsNotConstructed = errs.NewValueIsRequiredError(
	"call NewConfirmation or RestoreConfirmation constructor",
)

// ErrConfirmationAlreadyApplied is returned when a confirmation that was
// already consumed by the sweep job is applied again.
var ErrConfirmationAlreadyApplied = errors.New("payment confirmation already applied")

// Confirmation records that an external payment provider authorized payment
// for an order. Confirmations arrive asynchronously; the sweep job later
// consumes unapplied ones and moves the corresponding orders to CONFIRMED.
type Confirmation struct {
	id        kernel.UUID
	orderID   kernel.UUID
	reference string
	applied   bool

	isConstructed bool
}

// NewConfirmation records a fresh, unapplied confirmation. reference is the
// provider's authorization identifier.
func NewConfirmation(orderID kernel.UUID, reference string) (*Confirmation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	return &Confirmation{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		reference:     reference,
		isConstructed: true,
	}, nil
}

// RestoreConfirmation reconstructs a confirmation from persistence.
func RestoreConfirmation(id, orderID kernel.UUID, reference string, applied bool) (*Confirmation, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	c, err := NewConfirmation(orderID, reference)
	if err != nil {
		return nil, err
	}

	c.id = id
	c.applied = applied
	return c, nil
}

// Validate checks that the confirmation was created via a constructor.
func (c *Confirmation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConfirmationIsNotConstructed
	}
	return nil
}

func (c *Confirmation) ID() kernel.UUID {
	return c.id
}

func (c *Confirmation) OrderID() kernel.UUID {
	return c.orderID
}

func (c *Confirmation) Reference() string {
	return c.reference
}

func (c *Confirmation) IsApplied() bool {
	return c.applied
}

// MarkApplied consumes the confirmation. Applying twice is an error so the
// sweep job cannot double-transition an order.
func (c *Confirmation) MarkApplied() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.applied {
		return ErrConfirmationAlreadyApplied
	}
	c.applied = true
	return nil
}
