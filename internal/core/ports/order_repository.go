package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders persist together with their items; items are immutable after Add.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order. The write is
	// version-checked; ErrVersionConflict is returned when a competing
	// transition committed first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
