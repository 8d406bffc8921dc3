package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment confirmations.
type PaymentRepository interface {
	// Add persists a new payment confirmation.
	Add(ctx context.Context, aggregate *payment.Confirmation) error

	// Update persists changes to an existing confirmation (applied flag).
	Update(ctx context.Context, aggregate *payment.Confirmation) error

	// GetByOrderID retrieves the confirmation recorded for an order.
	// Returns *errs.ObjectNotFoundError when none was recorded.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Confirmation, error)

	// GetFirstUnapplied retrieves the oldest confirmation not yet consumed
	// by the sweep job. Returns ErrConfirmationNotFound when none remain.
	GetFirstUnapplied(ctx context.Context) (*payment.Confirmation, error)
}
