package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one seller's line item within an Order.
//
// sellerID and unitPriceAtTime are denormalized from the product snapshot at
// order time: a later price change or seller reassignment on the product never
// affects an existing order. lineTotal = quantity * unitPriceAtTime.
// Items are immutable after creation.
type Item struct {
	id              kernel.UUID
	productID       kernel.UUID
	sellerID        kernel.UUID
	quantity        int
	unitPriceAtTime kernel.Money
	lineTotal       kernel.Money

	isConstructed bool
}

// NewItem creates an order item, computing lineTotal from quantity and unit price.
func NewItem(id, productID, sellerID kernel.UUID, quantity int, unitPriceAtTime kernel.Money) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setSellerID(sellerID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPriceAtTime = unitPriceAtTime
	item.lineTotal = unitPriceAtTime.MulInt(quantity)
	return item, nil
}

// RestoreItem reconstructs an item from persistence, verifying the stored
// line total still matches quantity * unit price.
func RestoreItem(
	id, productID, sellerID kernel.UUID,
	quantity int,
	unitPriceAtTime, lineTotal kernel.Money,
) (Item, error) {
	item, err := NewItem(id, productID, sellerID, quantity, unitPriceAtTime)
	if err != nil {
		return Item{}, err
	}

	if !item.lineTotal.IsEqual(lineTotal) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"line total",
			fmt.Errorf("stored %s does not equal %d x %s", lineTotal, quantity, unitPriceAtTime),
		)
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// SellerID returns the seller who owned the product at order time.
func (i Item) SellerID() kernel.UUID {
	return i.sellerID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPriceAtTime returns the product price captured at order time.
func (i Item) UnitPriceAtTime() kernel.Money {
	return i.unitPriceAtTime
}

// LineTotal returns quantity * unitPriceAtTime.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.sellerID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
