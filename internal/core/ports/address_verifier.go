package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// AddressVerifier checks that a shipping address exists and can receive
// deliveries before checkout commits anything. Implementations may call an
// external address service; the composition root wires a permissive default.
type AddressVerifier interface {
	// Verify returns a non-nil error when the address cannot be shipped to.
	Verify(ctx context.Context, addressID kernel.UUID) error
}
