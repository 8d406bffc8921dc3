package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order as a given actor. Admins see everything;
// a buyer sees only their own orders; a seller gets the order with only
// their items.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   auth.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID, actor auth.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns who is asking.
func (q GetOrderQuery) Actor() auth.Actor {
	return q.actor
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID       kernel.UUID
	SellerID        kernel.UUID
	Quantity        int
	UnitPriceAtTime string
	LineTotal       string
}

// GetOrderQueryResponse is a full order view. Totals are zero-valued in a
// seller's copy since they cover lines the seller may not see.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Number        string
	BuyerID       kernel.UUID
	Status        string
	PaymentMethod string
	Subtotal      string
	Tax           string
	Shipping      string
	Total         string
	Items         []OrderItemResponse
}
