package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrNoItems is returned when a quote is requested for an empty item list.
var ErrNoItems = errors.New("cannot price an order with no items")

// Calculator is a pure domain service computing an order's monetary
// breakdown from its priced items. Given the same items it always produces
// the same Totals; nothing here reads the clock or the catalog.
//
// Rules:
//   - subtotal is the sum of the item line totals
//   - tax is subtotal multiplied by the tax rate
//   - shipping is free when the subtotal exceeds the free-shipping
//     threshold, otherwise the flat fee applies
//   - only the final total is rounded (half-up, 2 decimal places); the
//     stored tax absorbs the rounding so the breakdown always sums exactly
type Calculator struct {
	taxRate               decimal.Decimal
	freeShippingThreshold kernel.Money
	shippingFee           kernel.Money

	isConstructed bool
}

// NewCalculator creates a calculator with the standard rates:
// 8% tax, free shipping above 50.00, 9.99 flat fee otherwise.
func NewCalculator() Calculator {
	return Calculator{
		taxRate:               decimal.New(8, -2),
		freeShippingThreshold: kernel.MustMoneyFromString("50.00"),
		shippingFee:           kernel.MustMoneyFromString("9.99"),
		isConstructed:         true,
	}
}

// NewCustomCalculator creates a calculator with explicit rates. The tax rate
// is a fraction (0.08 for 8%) and must not be negative.
func NewCustomCalculator(
	taxRate decimal.Decimal,
	freeShippingThreshold kernel.Money,
	shippingFee kernel.Money,
) (Calculator, error) {
	if taxRate.IsNegative() {
		return Calculator{}, errs.NewValueIsOutOfRangeError("taxRate", taxRate, 0, 1)
	}

	return Calculator{
		taxRate:               taxRate,
		freeShippingThreshold: freeShippingThreshold,
		shippingFee:           shippingFee,
		isConstructed:         true,
	}, nil
}

// Validate checks that the calculator was created via a constructor.
func (c Calculator) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("call NewCalculator or NewCustomCalculator constructor")
	}
	return nil
}

// Quote computes the totals for the given order items.
func (c Calculator) Quote(items []order.Item) (order.Totals, error) {
	if err := c.Validate(); err != nil {
		return order.Totals{}, err
	}
	if len(items) == 0 {
		return order.Totals{}, ErrNoItems
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return order.Totals{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := c.shippingFee
	if subtotal.GreaterThan(c.freeShippingThreshold) {
		shipping = kernel.ZeroMoney()
	}

	tax := subtotal.MulRate(c.taxRate)
	total := subtotal.Add(tax).Add(shipping).RoundHalfUp()

	// Rounding happens once, on the total. The stored tax is back-derived so
	// that subtotal + tax + shipping equals the total to the cent.
	tax = total.Sub(subtotal).Sub(shipping)

	return order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}, nil
}
