package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

// Conflict errors surfaced by the inventory commit. They are definitive
// failures: the caller may re-fetch state and retry with corrected intent,
// but the engine never retries on its own.
var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductUnavailable = errors.New("product unavailable")
)

// InsufficientStockError reports that a product's current stock cannot cover
// the requested quantity. Carries the losing product so a multi-line checkout
// can tell the buyer exactly which cart line failed.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d, requested %d",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ProductUnavailableError reports that a product is no longer active for sale.
type ProductUnavailableError struct {
	ProductID kernel.UUID
}

// NewProductUnavailableError creates a ProductUnavailableError for the given product.
func NewProductUnavailableError(productID kernel.UUID) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID}
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("%s: product %s is not active", ErrProductUnavailable, e.ProductID)
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}
