package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Totals holds an order's monetary breakdown. The amounts are computed once
// at checkout by the pricing calculator and never recomputed afterwards.
//
// Invariant: Total = Subtotal + Tax + Shipping, exactly.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}

// Validate checks the additive invariant of the breakdown.
func (t Totals) Validate() error {
	sum := t.Subtotal.Add(t.Tax).Add(t.Shipping)
	if !sum.IsEqual(t.Total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order totals",
			fmt.Errorf("subtotal %s + tax %s + shipping %s does not equal total %s",
				t.Subtotal, t.Tax, t.Shipping, t.Total),
		)
	}
	return nil
}
