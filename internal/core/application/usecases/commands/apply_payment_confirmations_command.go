package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrApplyPaymentConfirmationsCommandIsNotConstructed = errors.New(
	"ApplyPaymentConfirmationsCommand must be created via NewApplyPaymentConfirmationsCommand constructor",
)

// ApplyPaymentConfirmationsCommand triggers consumption of the next recorded
// payment confirmation. Carries no payload; the handler picks the oldest
// unapplied confirmation itself.
type ApplyPaymentConfirmationsCommand struct {
	guard guard.ConstructorGuard
}

// NewApplyPaymentConfirmationsCommand creates the sweep command.
func NewApplyPaymentConfirmationsCommand() ApplyPaymentConfirmationsCommand {
	return ApplyPaymentConfirmationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyPaymentConfirmationsCommandIsNotConstructed if validation fails.
func (c *ApplyPaymentConfirmationsCommand) Validate() error {
	return c.guard.Validate(
		ErrApplyPaymentConfirmationsCommandIsNotConstructed,
	)
}
