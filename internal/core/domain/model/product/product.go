// Package product contains the Product aggregate. Stock is the single
// highly-contended resource in the system; the aggregate enforces that it
// can never be decremented past zero, and the persistence layer serializes
// concurrent decrements with row locks so the invariant holds across
// process instances.
package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the aggregate root for a sellable item.
//
// Invariants:
//   - stock >= 0 at all times; Reserve refuses to take stock below zero
//   - price is non-negative (enforced by kernel.Money)
//   - sellerID identifies the owning seller and never changes
type Product struct {
	id       kernel.UUID
	sellerID kernel.UUID
	price    kernel.Money
	stock    int
	isActive bool

	isConstructed bool
}

// NewProduct creates an active product with the given starting stock.
func NewProduct(id, sellerID kernel.UUID, price kernel.Money, stock int) (*Product, error) {
	p := &Product{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.price = price
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id, sellerID kernel.UUID, price kernel.Money, stock int, isActive bool) (*Product, error) {
	p, err := NewProduct(id, sellerID, price, stock)
	if err != nil {
		return nil, err
	}

	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the identifier of the owning seller.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Price returns the current list price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the available inventory count.
func (p *Product) Stock() int {
	return p.stock
}

// IsActive reports whether the product is currently for sale.
func (p *Product) IsActive() bool {
	return p.isActive
}

// Snapshot captures the product's current sale-relevant state for pricing
// and display. Snapshots are advisory: the authoritative stock check happens
// in Reserve, inside the commit's lock scope.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ProductID: p.id,
		SellerID:  p.sellerID,
		Price:     p.price,
		Stock:     p.stock,
		IsActive:  p.isActive,
	}
}

// Reserve decrements stock by the requested quantity.
//
// Rules:
//   - the product must be active, else ProductUnavailableError
//   - current stock must cover the quantity, else InsufficientStockError
//
// Reserve mutates only the in-memory aggregate; durability and mutual
// exclusion are the repository's concern.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if !p.isActive {
		return NewProductUnavailableError(p.id)
	}

	if p.stock < quantity {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Restock increases stock by the given quantity, e.g. when a cancelled
// order returns units to inventory.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	p.stock += quantity
	return nil
}

// ChangePrice sets a new list price. Existing order items keep the price
// captured at order time and are unaffected.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

// Deactivate takes the product off sale. Pending orders already holding
// reserved units are unaffected.
func (p *Product) Deactivate() {
	p.isActive = false
}

// Activate puts the product back on sale.
func (p *Product) Activate() {
	p.isActive = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.sellerID = id
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
