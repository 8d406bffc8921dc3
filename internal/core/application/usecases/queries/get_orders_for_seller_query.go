// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregates and read projections straight from
// SQL, per the CQRS split.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersForSellerQueryIsNotConstructed = errors.New(
	"GetOrdersForSellerQuery must be created via NewGetOrdersForSellerQuery constructor",
)

// GetOrdersForSellerQuery retrieves the orders containing a seller's items.
// The response is scoped to that seller: other sellers' lines in the same
// order are never included.
type GetOrdersForSellerQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForSellerQuery creates a query for a seller's order view.
func NewGetOrdersForSellerQuery(sellerID kernel.UUID) (GetOrdersForSellerQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetOrdersForSellerQuery{}, err
	}

	return GetOrdersForSellerQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForSellerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForSellerQueryIsNotConstructed)
}

// SellerID returns the seller whose view is requested.
func (q GetOrdersForSellerQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// SellerOrderItemResponse is one of the seller's own lines in an order.
type SellerOrderItemResponse struct {
	ProductID       kernel.UUID
	Quantity        int
	UnitPriceAtTime string
	LineTotal       string
}

// GetOrdersForSellerQueryResponse is one order as a seller is allowed to see
// it: identifiers, status and only that seller's items. Buyer identity and
// whole-order totals are withheld.
type GetOrdersForSellerQueryResponse struct {
	ID     kernel.UUID
	Number string
	Status string
	Items  []SellerOrderItemResponse
}
