package product

import (
	"marketplace/internal/core/domain/model/kernel"
)

// Snapshot is a point-in-time, lock-free read of a product's sale state,
// taken at checkout for pricing and display. It is advisory only: by the
// time the checkout commits, stock may have changed, so the committer
// re-reads stock under a row lock and the snapshot is never used for the
// authoritative availability check.
type Snapshot struct {
	ProductID kernel.UUID
	SellerID  kernel.UUID
	Price     kernel.Money
	Stock     int
	IsActive  bool
}
