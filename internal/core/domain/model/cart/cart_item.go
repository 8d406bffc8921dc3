// Package cart contains the CartItem entity. Cart rows are written by buyer
// browsing actions outside the engine; the checkout orchestrator only deletes
// them, scoped to the product IDs that were actually ordered.
package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrCartItemIsNotConstructed is returned when a CartItem was not created
// through NewCartItem.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")

// CartItem is one product line in a buyer's cart, unique per
// (buyerID, productID) pair with quantity >= 1.
type CartItem struct {
	buyerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewCartItem creates a cart line for the given buyer and product.
func NewCartItem(buyerID, productID kernel.UUID, quantity int) (*CartItem, error) {
	item := &CartItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setBuyerID(buyerID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the CartItem was created through NewCartItem.
func (c *CartItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartItemIsNotConstructed
	}
	return nil
}

// BuyerID returns the owning buyer's identifier.
func (c *CartItem) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the referenced product's identifier.
func (c *CartItem) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c *CartItem) Quantity() int {
	return c.quantity
}

// ChangeQuantity updates the requested quantity; it must stay >= 1.
func (c *CartItem) ChangeQuantity(quantity int) error {
	return c.setQuantity(quantity)
}

func (c *CartItem) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *CartItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *CartItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	c.quantity = quantity
	return nil
}
