package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
	ErrDuplicateProductLine    = errors.New("duplicate product in checkout lines")
)

// CheckoutLine is one requested line of a checkout: a product and how many
// units of it the buyer wants.
type CheckoutLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CheckoutCommand represents a request to place an order. When no explicit
// lines are given the buyer's saved cart is checked out instead.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	buyerID           kernel.UUID
	shippingAddressID kernel.UUID
	billingAddressID  *kernel.UUID
	paymentMethod     string
	lines             []CheckoutLine

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order. orderID is
// caller-supplied so retries stay idempotent at the persistence layer.
// billingAddressID may be nil; lines may be empty (cart checkout).
func NewCheckoutCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	shippingAddressID kernel.UUID,
	billingAddressID *kernel.UUID,
	paymentMethod string,
	lines []CheckoutLine,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setShippingAddressID(shippingAddressID),
		cmd.setBillingAddressID(billingAddressID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setLines(lines),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buyer placing the order.
func (c CheckoutCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ShippingAddressID returns the shipping address reference.
func (c CheckoutCommand) ShippingAddressID() kernel.UUID {
	return c.shippingAddressID
}

// BillingAddressID returns the billing address reference, or nil.
func (c CheckoutCommand) BillingAddressID() *kernel.UUID {
	return c.billingAddressID
}

// PaymentMethod returns the payment method tag.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Lines returns the explicit checkout lines; empty means cart checkout.
func (c CheckoutCommand) Lines() []CheckoutLine {
	lines := make([]CheckoutLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CheckoutCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CheckoutCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *CheckoutCommand) setShippingAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shippingAddressID = id
	return nil
}

func (c *CheckoutCommand) setBillingAddressID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.billingAddressID = id
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	c.paymentMethod = method
	return nil
}

func (c *CheckoutCommand) setLines(lines []CheckoutLine) error {
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
		key := line.ProductID.String()
		if seen[key] {
			return ErrDuplicateProductLine
		}
		seen[key] = true
	}

	c.lines = make([]CheckoutLine, len(lines))
	copy(c.lines, lines)
	return nil
}
