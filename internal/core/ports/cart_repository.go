package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart items. A cart is
// just the set of rows belonging to one buyer; there is no cart aggregate.
type CartRepository interface {
	// Upsert inserts the item or replaces the quantity of an existing
	// (buyer, product) row.
	Upsert(ctx context.Context, item *cart.CartItem) error

	// GetForBuyer retrieves all cart items belonging to the buyer.
	GetForBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.CartItem, error)

	// DeleteForBuyer removes only the buyer's rows for the given product
	// ids. Rows the buyer added after checkout started, or for other
	// products, are left untouched.
	DeleteForBuyer(ctx context.Context, buyerID kernel.UUID, productIDs []kernel.UUID) error
}
