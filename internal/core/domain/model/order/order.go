package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a single buyer checkout. Its items may span
// multiple sellers; each seller only ever sees and acts on their own subset.
//
// Invariants:
//   - at least one item; the sum of item line totals equals Totals.Subtotal
//   - buyerID, shipping address, payment method, and all monetary fields are
//     immutable after creation
//   - status changes only through TransitionTo, following the central
//     transition table in status.go
type Order struct {
	id                kernel.UUID
	number            kernel.OrderNumber
	buyerID           kernel.UUID
	shippingAddressID kernel.UUID
	billingAddressID  *kernel.UUID
	paymentMethod     string
	status            Status
	items             []Item
	totals            Totals
	version           int
}

// NewOrder creates a pending order from committed line items and computed totals.
// billingAddressID may be nil, in which case the shipping address doubles as
// the billing address.
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	buyerID kernel.UUID,
	shippingAddressID kernel.UUID,
	billingAddressID *kernel.UUID,
	paymentMethod string,
	items []Item,
	totals Totals,
) (*Order, error) {
	o := &Order{
		status:  StatusPending,
		version: 1,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyerID(buyerID),
		o.setShippingAddressID(shippingAddressID),
		o.setBillingAddressID(billingAddressID),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
		o.setTotals(totals),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and optimistic-concurrency version.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	buyerID kernel.UUID,
	shippingAddressID kernel.UUID,
	billingAddressID *kernel.UUID,
	paymentMethod string,
	items []Item,
	totals Totals,
	status Status,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, number, buyerID, shippingAddressID, billingAddressID, paymentMethod, items, totals)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is less than 1", version),
		)
	}

	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || len(o.items) == 0 {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-displayable order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// BuyerID returns the identifier of the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// ShippingAddressID returns the shipping address reference.
func (o *Order) ShippingAddressID() kernel.UUID {
	return o.shippingAddressID
}

// BillingAddressID returns the billing address reference, or nil when the
// shipping address is used for billing.
func (o *Order) BillingAddressID() *kernel.UUID {
	return o.billingAddressID
}

// PaymentMethod returns the payment method tag recorded at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the monetary breakdown computed at checkout.
func (o *Order) Totals() Totals {
	return o.totals
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// Items returns a copy of all line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemsForSeller returns the subset of items owned by the given seller.
// This is the only view of an order a seller is ever shown.
func (o *Order) ItemsForSeller(sellerID kernel.UUID) []Item {
	var items []Item
	for _, item := range o.items {
		if item.SellerID().IsEqual(sellerID) {
			items = append(items, item)
		}
	}
	return items
}

// HasSellerItems reports whether at least one item belongs to the given seller.
func (o *Order) HasSellerItems(sellerID kernel.UUID) bool {
	for _, item := range o.items {
		if item.SellerID().IsEqual(sellerID) {
			return true
		}
	}
	return false
}

// ProductIDs returns the distinct product identifiers across all items,
// used to scope cart-row deletion to exactly what was ordered.
func (o *Order) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.items))
	seen := make(map[string]bool, len(o.items))
	for _, item := range o.items {
		key := item.ProductID().String()
		if !seen[key] {
			seen[key] = true
			ids = append(ids, item.ProductID())
		}
	}
	return ids
}

// TransitionTo moves the order to the target status on behalf of the given role.
// The central transition table decides legality; ownership must already have
// been established by the authorization gate.
func (o *Order) TransitionTo(target Status, role auth.Role) error {
	newStatus, err := o.status.Transition(target, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.buyerID = id
	return nil
}

func (o *Order) setShippingAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.shippingAddressID = id
	return nil
}

func (o *Order) setBillingAddressID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.billingAddressID = id
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.LineTotal())
	}
	if !sum.IsEqual(totals.Subtotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("item line totals sum to %s, subtotal is %s", sum, totals.Subtotal),
		)
	}

	o.totals = totals
	return nil
}
