package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Checkout uses it in two phases: advisory snapshots first, then a locked
// re-read inside the transaction that actually commits stock.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetSnapshots reads price, stock, activity and seller for each id
	// without taking locks. Returns *errs.ObjectNotFoundError for any id
	// that does not exist.
	GetSnapshots(ctx context.Context, ids []kernel.UUID) ([]product.Snapshot, error)

	// GetForUpdate retrieves a product and locks its row for the remainder
	// of the current transaction (SELECT ... FOR UPDATE). Must be called
	// inside an active unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
